package solver

import (
	"testing"

	"github.com/ehrlich-b/mixupcube/internal/cube"
	"github.com/ehrlich-b/mixupcube/internal/heuristic"
)

func TestSolveAlreadySolvedReturnsSentinel(t *testing.T) {
	c := cube.NewSolved()
	got := Solve(&c, heuristic.NewSet(), 0)
	want := []int{cube.SolutionTerminator}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("Solve(solved) = %v, want %v", got, want)
	}
}

func TestSolveSingleTurnScramble(t *testing.T) {
	for turn := 0; turn < 6; turn++ { // the six 90-degree face turns
		c := cube.NewSolved()
		cube.Turn(&c, turn)

		got := Solve(&c, heuristic.NewSet(), 0)
		if len(got) == 0 || got[len(got)-1] != cube.SolutionTerminator {
			t.Fatalf("turn %d: solution %v missing terminator", turn, got)
		}

		solved := cube.NewSolved()
		cube.Turn(&solved, turn)
		for _, t2 := range got {
			if t2 == cube.SolutionTerminator || t2 == cube.SolutionSeparator {
				break
			}
			cube.Turn(&solved, t2)
		}
		if !solved.IsSolved() {
			t.Errorf("turn %d: applying returned solution %v did not solve the cube", turn, got)
		}
	}
}

func TestSolveToCubeShapeFromCubeShapedScramble(t *testing.T) {
	c := cube.NewSolved()
	cube.Turn(&c, 0) // U, a face turn: stays cube-shaped
	cube.Turn(&c, 5) // R
	if !c.IsCubeShape() {
		t.Fatal("face turns should preserve cube shape")
	}

	got := SolveToCubeShape(&c, 0)
	applied := c
	for _, t2 := range got {
		if t2 == cube.SolutionTerminator || t2 == cube.SolutionSeparator {
			break
		}
		cube.Turn(&applied, t2)
	}
	if !applied.IsCubeShape() {
		t.Errorf("applying solve-to-cube-shape solution %v did not reach cube shape", got)
	}
}

func TestSolveToCubeShapeAlreadyShaped(t *testing.T) {
	c := cube.NewSolved()
	got := SolveToCubeShape(&c, 0)
	if len(got) != 1 || got[0] != cube.SolutionTerminator {
		t.Fatalf("SolveToCubeShape(solved) = %v, want [%d]", got, cube.SolutionTerminator)
	}
}

func TestSolveRespectsMaxDepthCap(t *testing.T) {
	c := cube.NewSolved()
	cube.Turn(&c, 0) // U: one move from solved
	cube.Turn(&c, 5) // R: two moves from solved

	if got := Solve(&c, heuristic.NewSet(), 1); got != nil {
		t.Fatalf("Solve with max-depth 1 on a two-move scramble = %v, want nil", got)
	}
	if got := Solve(&c, heuristic.NewSet(), 2); got == nil {
		t.Fatal("Solve with max-depth 2 on a two-move scramble should find a solution")
	}
}
