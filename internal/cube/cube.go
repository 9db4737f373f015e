// Package cube implements the 3x3x3 Mixup Cube: a Rubik's-cube variant whose
// center slice turns by 45 degrees, letting face pieces wander into edge
// slots and vice versa.
//
// The puzzle is modeled as a fixed array of 26 cubies (8 corners, 12 edges,
// 6 faces), each carrying an id (which physical piece occupies the slot) and
// an orientation. Slot numbering, turn indices, and cubie ids are fixed by
// the data model below and must never be renumbered: hash functions and the
// turn-avoidance table depend on them bit-exactly.
package cube

import "fmt"

// SlotID identifies a position in the Cube, or equivalently (since a cubie's
// id is its home slot at the solved state) a cubie's identity.
//
// Corners occupy 0-7, edges occupy 8-19, faces occupy 20-25. The letters are
// always listed in the order U, D, F, B, L, R. For example SlotUFL is the
// corner at the intersection of the Up, Front and Left faces.
type SlotID uint8

const (
	SlotUFL SlotID = iota
	SlotUBL
	SlotUBR
	SlotUFR
	SlotDFL
	SlotDBL
	SlotDBR
	SlotDFR

	SlotUF
	SlotUL
	SlotUB
	SlotUR
	SlotFL
	SlotBL
	SlotBR
	SlotFR
	SlotDF
	SlotDL
	SlotDB
	SlotDR

	SlotU
	SlotF
	SlotL
	SlotB
	SlotR
	SlotD
)

// NumSlots is the number of cubies in a Cube.
const NumSlots = 26

// NumCorners, NumEdges and NumFaces partition the 26 slots by piece type.
const (
	NumCorners = 8
	NumEdges   = 12
	NumFaces   = 6
)

// IsCorner, IsEdge and IsFace classify a slot id by its piece type.
func IsCorner(id uint8) bool { return id < NumCorners }
func IsEdge(id uint8) bool   { return id >= NumCorners && id < NumCorners+NumEdges }
func IsFace(id uint8) bool   { return id >= NumCorners+NumEdges }

// Cubie is a single physical piece: its identity and its rotation relative
// to its home orientation. Corner orientation is taken mod 3; edge and face
// orientation mod 4.
type Cubie struct {
	ID     uint8
	Orient uint8
}

// Cube is the full 26-cubie puzzle state, indexed by slot id. Cubes are
// value types: copying a Cube copies its entire state, and the zero Cube is
// not meaningful (use NewSolved).
type Cube struct {
	Cubies [NumSlots]Cubie
}

// NewSolved returns a Cube in the solved state: cubies[i] = (i, 0) for every
// slot.
func NewSolved() Cube {
	var c Cube
	for i := range c.Cubies {
		c.Cubies[i] = Cubie{ID: uint8(i), Orient: 0}
	}
	return c
}

// Copy performs a bit-exact copy of src into dst.
func Copy(dst *Cube, src *Cube) {
	*dst = *src
}

// IsCubeShape reports whether every edge slot holds an edge piece at an
// orientation of 0 or 2 (not rotated by an odd multiple of 90 degrees). This
// is a weaker predicate than IsSolved: it only demands the puzzle looks like
// an ordinary (non-mixed) cube, not that it is actually solved.
func (c *Cube) IsCubeShape() bool {
	for slot := SlotUF; slot <= SlotDR; slot++ {
		cubie := c.Cubies[slot]
		if !IsEdge(cubie.ID) {
			return false
		}
		if cubie.Orient != 0 && cubie.Orient != 2 {
			return false
		}
	}
	return true
}

// IsSolved reports whether the cube matches any of the six rotational
// images of the solved state (see solvedImages in rotation.go), with face
// orientation masked out before comparison since a lone face sticker has no
// visible rotation.
func (c *Cube) IsSolved() bool {
	for i := range solvedImages {
		if cubeEqualMaskingFaceOrient(c, &solvedImages[i]) {
			return true
		}
	}
	return false
}

func cubeEqualMaskingFaceOrient(a, b *Cube) bool {
	for i := 0; i < NumSlots; i++ {
		ca, cb := a.Cubies[i], b.Cubies[i]
		if ca.ID != cb.ID {
			return false
		}
		if IsFace(ca.ID) {
			continue
		}
		if ca.Orient != cb.Orient {
			return false
		}
	}
	return true
}

// Print writes the cube as a list of (id, orient) pairs, matching the
// source tool's debug dump.
func (c *Cube) Print() string {
	s := "["
	for i, cubie := range c.Cubies {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("(%d, %d)", cubie.ID, cubie.Orient)
	}
	return s + "]"
}
