package cube

// NTurnTypes is the number of distinct turn operators (0..38). The
// sentinel 39 for "no previous turn" (NoPreviousTurn) is not counted.
const NTurnTypes = 39

// NoPreviousTurn is the sentinel turn index used when a search has not made
// any move yet; it is a valid index into turn-avoid-table lookups (row 39,
// which avoids nothing).
const NoPreviousTurn = 39

func rotate(c *Cube, slot SlotID, amount int) {
	cubie := &c.Cubies[slot]
	if IsCorner(cubie.ID) {
		cubie.Orient = uint8((int(cubie.Orient) + amount) % 3)
	} else {
		cubie.Orient = uint8((int(cubie.Orient) + amount) % 4)
	}
}

// cycle4 moves slot c0's contents into c1, c1's into c2, c2's into c3, and
// c3's into c0.
func cycle4(c *Cube, c0, c1, c2, c3 SlotID) {
	tmp := c.Cubies[c3]
	c.Cubies[c3] = c.Cubies[c2]
	c.Cubies[c2] = c.Cubies[c1]
	c.Cubies[c1] = c.Cubies[c0]
	c.Cubies[c0] = tmp
}

// cycle8 moves slot c0's contents into c1, c1's into c2, ..., and c7's into
// c0.
func cycle8(c *Cube, c0, c1, c2, c3, c4, c5, c6, c7 SlotID) {
	tmp := c.Cubies[c7]
	c.Cubies[c7] = c.Cubies[c6]
	c.Cubies[c6] = c.Cubies[c5]
	c.Cubies[c5] = c.Cubies[c4]
	c.Cubies[c4] = c.Cubies[c3]
	c.Cubies[c3] = c.Cubies[c2]
	c.Cubies[c2] = c.Cubies[c1]
	c.Cubies[c1] = c.Cubies[c0]
	c.Cubies[c0] = tmp
}

func turnU(c *Cube) {
	rotate(c, SlotU, 1)
	cycle4(c, SlotUFL, SlotUBL, SlotUBR, SlotUFR)
	cycle4(c, SlotUF, SlotUL, SlotUB, SlotUR)
}

func turnD(c *Cube) {
	rotate(c, SlotD, 1)
	cycle4(c, SlotDFL, SlotDFR, SlotDBR, SlotDBL)
	cycle4(c, SlotDF, SlotDR, SlotDB, SlotDL)
}

func turnF(c *Cube) {
	rotate(c, SlotUFL, 1)
	rotate(c, SlotUFR, 2)
	rotate(c, SlotDFR, 1)
	rotate(c, SlotDFL, 2)
	rotate(c, SlotF, 1)
	cycle4(c, SlotUFL, SlotUFR, SlotDFR, SlotDFL)
	cycle4(c, SlotUF, SlotFR, SlotDF, SlotFL)
}

func turnB(c *Cube) {
	rotate(c, SlotUBR, 1)
	rotate(c, SlotUBL, 2)
	rotate(c, SlotDBL, 1)
	rotate(c, SlotDBR, 2)
	rotate(c, SlotB, 1)
	cycle4(c, SlotUBR, SlotUBL, SlotDBL, SlotDBR)
	cycle4(c, SlotUB, SlotBL, SlotDB, SlotBR)
}

func turnL(c *Cube) {
	rotate(c, SlotUFL, 2)
	rotate(c, SlotUBL, 1)
	rotate(c, SlotDBL, 2)
	rotate(c, SlotDFL, 1)
	rotate(c, SlotUL, 2)
	rotate(c, SlotBL, 2)
	rotate(c, SlotDL, 2)
	rotate(c, SlotFL, 2)
	rotate(c, SlotL, 1)
	cycle4(c, SlotUFL, SlotDFL, SlotDBL, SlotUBL)
	cycle4(c, SlotUL, SlotFL, SlotDL, SlotBL)
}

func turnR(c *Cube) {
	rotate(c, SlotUFR, 1)
	rotate(c, SlotUBR, 2)
	rotate(c, SlotDFR, 2)
	rotate(c, SlotDBR, 1)
	rotate(c, SlotUR, 2)
	rotate(c, SlotBR, 2)
	rotate(c, SlotDR, 2)
	rotate(c, SlotFR, 2)
	rotate(c, SlotR, 1)
	cycle4(c, SlotUFR, SlotUBR, SlotDBR, SlotDFR)
	cycle4(c, SlotUR, SlotBR, SlotDR, SlotFR)
}

func turnM(c *Cube) {
	rotate(c, SlotUF, 2)
	rotate(c, SlotDF, 2)
	rotate(c, SlotDB, 2)
	rotate(c, SlotUB, 2)
	cycle8(c, SlotU, SlotUF, SlotF, SlotDF, SlotD, SlotDB, SlotB, SlotUB)
}

func turnE(c *Cube) {
	rotate(c, SlotFL, 1)
	rotate(c, SlotBL, 2)
	rotate(c, SlotBR, 3)
	rotate(c, SlotFR, 2)
	rotate(c, SlotF, 1)
	rotate(c, SlotB, 3)
	cycle8(c, SlotFL, SlotF, SlotFR, SlotR, SlotBR, SlotB, SlotBL, SlotL)
}

func turnS(c *Cube) {
	rotate(c, SlotUL, 1)
	rotate(c, SlotUR, 1)
	rotate(c, SlotDR, 3)
	rotate(c, SlotDL, 3)
	rotate(c, SlotU, 1)
	rotate(c, SlotL, 3)
	rotate(c, SlotR, 1)
	rotate(c, SlotD, 3)
	cycle8(c, SlotUL, SlotU, SlotUR, SlotR, SlotDR, SlotD, SlotDL, SlotL)
}

var facePrimitives = [6]func(*Cube){turnU, turnD, turnF, turnB, turnL, turnR}
var slicePrimitives = [3]func(*Cube){turnM, turnE, turnS}

// Turn applies turn index t (0..38) to cube in place. The turn-index
// contract:
//
//	 0..5  - U, D, F, B, L, R. 90 degree clockwise face turns.
//	 6..11 - same faces, repeated twice (180 degrees).
//	12..17 - same faces, repeated three times (270 degrees).
//	18..20 - M, E, S. 45 degree slice turns.
//	21..38 - same slices, repeated 2..7 times.
func Turn(c *Cube, t int) {
	if t < 18 {
		repeats := 1 + t/6
		primitive := facePrimitives[t%6]
		for i := 0; i < repeats; i++ {
			primitive(c)
		}
		return
	}
	repeats := 1 + (t-18)/3
	primitive := slicePrimitives[(t-18)%3]
	for i := 0; i < repeats; i++ {
		primitive(c)
	}
}

// Turned returns a copy of c with turn t applied, leaving c unmodified.
func Turned(c *Cube, t int) Cube {
	out := *c
	Turn(&out, t)
	return out
}
