package quoridor

import (
	"container/heap"
	"math"

	"adversarial/game"
)

// Unreachable is the path length reported when a pawn cannot reach its goal row.
var Unreachable = math.Inf(1)

// PathLength returns the minimum number of single orthogonal steps the
// player's pawn needs to reach its goal row, or Unreachable. Walls and the
// opponent's pawn are fixed obstacles; jumps over the opponent are not counted.
//
// The search is A* ordered by steps-so-far plus remaining row distance. Each
// expansion asks the game for the pawn's legal moves on a transient state where
// the player is to move and holds no walls.
func (q *Quoridor) PathLength(s State, player game.Player) float64 {
	start, goal := s.pawn(player), q.goalRow(player)
	if start.Y == goal {
		return 0
	}

	probe := s
	probe.Turn = player
	probe.Walls1, probe.Walls2 = 0, 0

	frontier := &pathQueue{}
	heap.Push(frontier, pathEntry{priority: abs(goal - start.Y), cost: 0, pos: start})
	reached := map[Pos]int{start: 0}

	for frontier.Len() > 0 {
		e := heap.Pop(frontier).(pathEntry)
		if e.cost > reached[e.pos] { // stale entry
			continue
		}
		for _, a := range q.Actions(probe.withPawn(player, e.pos)) {
			act := a.(Action)
			if act.Type != Pawn || act.At.distance(e.pos) != 1 {
				continue
			}
			next, cost := act.At, e.cost+1
			if next.Y == goal {
				return float64(cost)
			}
			if best, ok := reached[next]; ok && best <= cost {
				continue
			}
			reached[next] = cost
			heap.Push(frontier, pathEntry{priority: cost + abs(goal-next.Y), cost: cost, pos: next})
		}
	}
	return Unreachable
}

type pathEntry struct {
	priority int
	cost     int
	pos      Pos
}

type pathQueue []pathEntry

func (pq pathQueue) Len() int { return len(pq) }

func (pq pathQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	// Deeper entries first among equal priorities.
	return pq[i].cost > pq[j].cost
}

func (pq pathQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pathQueue) Push(x any) { *pq = append(*pq, x.(pathEntry)) }

func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]
	return e
}
