// meta/meta.go
package meta

// GAME is the game played when none is chosen.
const GAME = "quoridor"

// PLAYER1 and PLAYER2 are the default agent names.
const PLAYER1 = "mcts"
const PLAYER2 = "random"

// CUTOFF defines the MCTS playout cutoff used when no depth is given.
const CUTOFF = 75

// ROLLOUTS defines the number of rollouts for MCTS.
const ROLLOUTS = 100

// POLICY defines the MCTS rollout policy.
const POLICY = "random"

// BOARD_SIZE and WALLS configure quoridor.
const BOARD_SIZE = 5
const WALLS = 5

// BOARD_SIZES lists the supported quoridor board sizes.
var BOARD_SIZES = []int{3, 5, 9}

// TRIALS defines the number of games per evaluation.
const TRIALS = 10

// WORKERS defines how many games run at once.
const WORKERS = 1

// OUTPUT_FORMAT defines the format of written records.
const OUTPUT_FORMAT = "csv"
