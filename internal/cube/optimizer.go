package cube

// OptimizeTurns collapses a turn sequence by combining consecutive turns on
// the same face or slice, dropping any that cancel out: R R -> R2, R R R ->
// R', R2 R2 -> (nothing), M M -> M2, eight M's in a row -> (nothing, a full
// rotation back to start).
func OptimizeTurns(turns []int) []int {
	if len(turns) == 0 {
		return turns
	}

	optimized := make([]int, 0, len(turns))

	for _, t := range turns {
		if len(optimized) == 0 {
			optimized = append(optimized, t)
			continue
		}

		last := optimized[len(optimized)-1]
		combined, combinable := combine(last, t)
		if !combinable {
			optimized = append(optimized, t)
			continue
		}
		if combined < 0 {
			optimized = optimized[:len(optimized)-1]
		} else {
			optimized[len(optimized)-1] = combined
		}
	}

	return optimized
}

// combine merges two turns if they're on the same face or the same slice,
// returning the merged turn index, or -1 if they cancel out completely.
// combinable is false when a and b don't share a face/slice at all.
func combine(a, b int) (merged int, combinable bool) {
	aFace, bFace := a < 18, b < 18
	if aFace != bFace {
		return 0, false
	}

	if aFace {
		fa, fb := a%6, b%6
		if fa != fb {
			return 0, false
		}
		reps := (1 + a/6 + 1 + b/6) % 4
		if reps == 0 {
			return -1, true
		}
		return fa + 6*(reps-1), true
	}

	fa, fb := (a-18)%3, (b-18)%3
	if fa != fb {
		return 0, false
	}
	reps := (1 + (a-18)/3 + 1 + (b-18)/3) % 8
	if reps == 0 {
		return -1, true
	}
	return 18 + fa + 3*(reps-1), true
}

// OptimizeNotation parses, optimizes and re-renders a turn-notation string.
func OptimizeNotation(sequence string) (string, error) {
	turns, err := ParseTurns(sequence)
	if err != nil {
		return "", err
	}
	return FormatTurns(OptimizeTurns(turns)), nil
}

// TurnCount returns the number of turns in a sequence after optimization.
func TurnCount(turns []int) int {
	return len(OptimizeTurns(turns))
}

// IsCancellingSequence reports whether turns collapses to nothing.
func IsCancellingSequence(turns []int) bool {
	return len(OptimizeTurns(turns)) == 0
}
