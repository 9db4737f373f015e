package cube

// The solved predicate must accept not just the canonical solved cube but
// any of the six whole-cube reorientations of it (white, red, yellow,
// orange, green or blue showing on the physical Up face). The turn set only
// contains single-layer and slice operators, never a whole-cube rotation
// primitive directly — but composing a face turn with its opposite face's
// inverse turn and the correct power of the between-them slice turn
// produces exactly that: the layer turns cancel each other's "local"
// rotation and what's left is a pure relabeling of the whole cube.
//
// rotXSeq tips the cube so the original Front face becomes Up, rotating
// about the Left-Right axis: R, L', M^6 (M's primitive is a 45-degree
// 8-cycle, so six repeats is the 270-degree turn that matches R/L's
// rotational sense around the U/B/D/F ring).
var rotXSeq = []int{5, 16, 33}

// rotZSeq tips the cube so the original Left face becomes Up, rotating
// about the Front-Back axis: F, B', S^2 (S's 45-degree 8-cycle applied
// twice is the 90-degree turn matching F/B's rotational sense around the
// U/R/D/L ring).
var rotZSeq = []int{2, 15, 23}

func applySeq(c Cube, seq []int, times int) Cube {
	for i := 0; i < times; i++ {
		for _, t := range seq {
			Turn(&c, t)
		}
	}
	return c
}

// solvedImages holds the six whole-cube reorientations of the solved state
// that IsSolved treats as solved: identity, then rotX applied once/twice/
// three times (Front, Down and Back each becoming Up in turn), then rotZ
// applied once and three times (Left and Right becoming Up).
var solvedImages = [6]Cube{}

func init() {
	solved := NewSolved()
	solvedImages[0] = solved
	solvedImages[1] = applySeq(solved, rotXSeq, 1)
	solvedImages[2] = applySeq(solved, rotXSeq, 2)
	solvedImages[3] = applySeq(solved, rotXSeq, 3)
	solvedImages[4] = applySeq(solved, rotZSeq, 1)
	solvedImages[5] = applySeq(solved, rotZSeq, 3)
}
