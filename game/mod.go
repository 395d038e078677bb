package game

// Player identifies one of the two sides of a game. Player 1 moves first.
type Player int

const (
	NoPlayer Player = 0
	Player1  Player = 1
	Player2  Player = 2
)

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// State is one immutable position. Concrete states are comparable values so
// they can be used as map keys; operations on a State always return a new copy.
type State any

// Action is an immutable, comparable move description.
type Action any

// Game is the contract every game must satisfy to be searched.
type Game interface {
	Start() State
	// Actions returns the legal actions in a fixed order. The order is used to
	// break ties, so it must be deterministic.
	Actions(State) []Action
	Successor(State, Action) State
	IsEnd(State) bool
	// Utility is zero-sum and reported from the given player's perspective.
	Utility(State, Player) float64
	Player(State) Player
	// WinBonus is the utility magnitude of a decisive win.
	WinBonus() float64
}

// ActionKind groups actions into categories, e.g. pawn moves vs wall placements.
type ActionKind int

const (
	AnyKind ActionKind = iota
	PawnMove
	WallPlacement
)

// Classifier is implemented by games whose actions fall into categories.
type Classifier interface {
	Kind(Action) ActionKind
}

// Advancer is implemented by games with a notion of "moving toward the goal".
type Advancer interface {
	ForwardAction(State) (Action, bool)
}

// Parser is implemented by games that accept free-text actions.
type Parser interface {
	ParseAction(string) (Action, error)
	FormatAction(Action) string
}

// Renderer draws a state for the console.
type Renderer interface {
	Render(State) string
}

// Evaluate scores a non-terminal state from the given player's perspective.
// Higher is better for that player. Scores must stay well below WinBonus.
type Evaluate func(State, Player) float64

// Zero is the constant evaluator used for games without a specialised heuristic.
func Zero(State, Player) float64 {
	return 0
}
