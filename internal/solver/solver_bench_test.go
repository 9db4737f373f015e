package solver

import (
	"testing"

	"github.com/ehrlich-b/mixupcube/internal/cube"
	"github.com/ehrlich-b/mixupcube/internal/heuristic"
)

func BenchmarkSolveSingleTurn(b *testing.B) {
	set := heuristic.NewSet()
	for i := 0; i < b.N; i++ {
		c := cube.NewSolved()
		cube.Turn(&c, 5) // R
		Solve(&c, set, 0)
	}
}

func BenchmarkSolveToCubeShapeTwoTurns(b *testing.B) {
	for i := 0; i < b.N; i++ {
		c := cube.NewSolved()
		cube.Turn(&c, 0)
		cube.Turn(&c, 5)
		SolveToCubeShape(&c, 0)
	}
}
