// Package solver implements the iterative-deepening depth-first search
// that finds shortest turn sequences solving a Mixup Cube, pruned by
// move-avoidance and (for full solves) admissible heuristic lower bounds.
package solver

import (
	"github.com/ehrlich-b/mixupcube/internal/cube"
	"github.com/ehrlich-b/mixupcube/internal/heuristic"
)

// Predicate reports whether c counts as solved for the purposes of a
// search: either "truly solved" (cube.Cube.IsSolved) or the weaker
// "cube-shaped" (cube.Cube.IsCubeShape).
type Predicate func(c *cube.Cube) bool

// Solve finds the shortest turn sequence that brings c to IsSolved, using
// heuristics loaded into h to prune the search. Pass heuristic.NewSet()
// (empty) to search without pruning; it remains correct, just slower.
//
// maxDepth caps how many IDDFS rounds are attempted; maxDepth <= 0 means
// unbounded. A cube that still isn't solved once the cap is reached
// returns nil, distinguishing "no solution within the cap" from "already
// solved" (the lone []int{cube.SolutionTerminator} sentinel).
//
// The returned sequence uses the SolutionList wire convention: a lone
// []int{-2} means c was already solved.
func Solve(c *cube.Cube, h *heuristic.Set, maxDepth int) []int {
	return solve(c, c.IsSolved, h, maxDepth)
}

// SolveToCubeShape finds the shortest turn sequence that brings c to
// IsCubeShape. Heuristics are never applied here: the admissibility
// argument for heuristic pruning requires the predicate to coincide with
// "hash equals hash-of-solved" for every registered projection, which
// cube-shape does not satisfy. Passing a populated Set would silently
// break solution optimality, so this always searches with an empty one.
//
// maxDepth caps how many IDDFS rounds are attempted; maxDepth <= 0 means
// unbounded.
func SolveToCubeShape(c *cube.Cube, maxDepth int) []int {
	return solve(c, c.IsCubeShape, heuristic.NewSet(), maxDepth)
}

func solve(c *cube.Cube, predicate Predicate, h *heuristic.Set, maxDepth int) []int {
	if predicate(c) {
		return []int{cube.SolutionTerminator}
	}

	stack := cube.NewSearchStack(1000)
	for depth := 1; maxDepth <= 0 || depth <= maxDepth; depth++ {
		solutions := searchAtDepth(c, depth, stack, predicate, h, false)
		if solutions.Count() > 0 {
			return solutions.GetIntList()
		}
	}
	return nil
}

// searchAtDepth runs one bounded iterative-deepening round: a
// non-recursive depth-first search to exactly maxDepth turns, pruned by
// move-avoidance always and by heuristic lower bounds when h is
// non-empty. multiple controls whether the search keeps going after the
// first solution (collecting every solution at this depth) or returns
// immediately.
func searchAtDepth(toSolve *cube.Cube, maxDepth int, stack *cube.SearchStack, predicate Predicate, h *heuristic.Set, multiple bool) *cube.SolutionList {
	solutions := cube.NewSolutionList()
	stack.Clear()

	current := *toSolve
	depth := 0
	turn := cube.NoPreviousTurn
	path := make([]int, maxDepth)

	for {
		if depth == maxDepth-1 {
			for t := 0; t < cube.NTurnTypes; t++ {
				if cube.Avoided(turn, t) {
					continue
				}
				tmp := cube.Turned(&current, t)
				if predicate(&tmp) {
					path[maxDepth-1] = t
					solutions.Add(path)
					if !multiple {
						return solutions
					}
				}
			}
		} else {
			for t := 0; t < cube.NTurnTypes; t++ {
				if cube.Avoided(turn, t) {
					continue
				}
				tmp := cube.Turned(&current, t)
				if int(h.GetDist(&tmp))+depth > maxDepth+1 {
					continue
				}
				stack.Push(&tmp, t, depth+1)
			}
		}

		var ok bool
		current, turn, depth, ok = stack.Pop()
		if !ok {
			return solutions
		}
		path[depth-1] = turn
	}
}
