package cube

import "testing"

func TestNewSolvedIsSolved(t *testing.T) {
	c := NewSolved()
	if !c.IsSolved() {
		t.Fatal("a freshly solved cube should report solved")
	}
	if !c.IsCubeShape() {
		t.Fatal("a freshly solved cube should be in cube shape")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	src := NewSolved()
	Turn(&src, 0) // U
	var dst Cube
	Copy(&dst, &src)
	Turn(&src, 0) // U again, dst must not see this
	if dst == src {
		t.Fatal("Copy should produce an independent snapshot, not an alias")
	}
}

func TestSingleTurnBreaksSolved(t *testing.T) {
	for t2 := 0; t2 < NTurnTypes; t2++ {
		c := NewSolved()
		Turn(&c, t2)
		if c.IsSolved() {
			t.Errorf("turn %d (%s) left the cube solved, want broken", t2, FormatTurn(t2))
		}
	}
}

func TestFourQuarterTurnsRestoreFace(t *testing.T) {
	for family := 0; family < 6; family++ {
		c := NewSolved()
		for i := 0; i < 4; i++ {
			Turn(&c, family)
		}
		if !c.IsSolved() {
			t.Errorf("four quarter turns of face family %d should restore solved state", family)
		}
	}
}

func TestEightSliceTurnsRestore(t *testing.T) {
	for family := 0; family < 3; family++ {
		c := NewSolved()
		for i := 0; i < 8; i++ {
			Turn(&c, 18+family)
		}
		if !c.IsSolved() {
			t.Errorf("eight 45-degree turns of slice family %d should restore solved state", family)
		}
	}
}

func TestDoubleTurnIsTwoSingles(t *testing.T) {
	for family := 0; family < 6; family++ {
		single := NewSolved()
		Turn(&single, family)
		Turn(&single, family)

		double := NewSolved()
		Turn(&double, 6+family)

		if single != double {
			t.Errorf("face family %d: two single turns should equal one double turn", family)
		}
	}
}

func TestTripleTurnIsInverse(t *testing.T) {
	for family := 0; family < 6; family++ {
		c := NewSolved()
		Turn(&c, family)
		Turn(&c, 12+family) // triple == inverse
		if !c.IsSolved() {
			t.Errorf("face family %d: single then triple should restore solved state", family)
		}
	}
}

func TestIsCubeShapeRejectsMisplacedFace(t *testing.T) {
	c := NewSolved()
	// Swap a face cubie into an edge slot: no longer cube-shaped.
	c.Cubies[SlotUF], c.Cubies[SlotU] = c.Cubies[SlotU], c.Cubies[SlotUF]
	if c.IsCubeShape() {
		t.Fatal("swapping a face cubie into an edge slot should break cube shape")
	}
}

func TestSixRotationalImagesAreSolved(t *testing.T) {
	for i, img := range solvedImages {
		c := img
		if !c.IsSolved() {
			t.Errorf("solved image %d should itself report solved", i)
		}
	}
}
