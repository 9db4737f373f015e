// Package mfen implements a compact text notation for a Mixup Cube state,
// adapted from the teacher's CFEN sticker notation to this puzzle's cubie
// model: instead of run-length-encoded face colors, mfen run-length-encodes
// consecutive solved slots.
package mfen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ehrlich-b/mixupcube/internal/cube"
)

// Format renders every one of c's 26 slots, in slot order, as "id:orient"
// comma-separated tokens. Any maximal run of three or more consecutive
// slots already at rest (slot i holding id i at orientation 0) is
// abbreviated to a single "-<n>" token instead of n individual tokens, so a
// lightly-scrambled cube's notation stays short. The solved cube renders
// as exactly "-26".
func Format(c *cube.Cube) string {
	var tokens []string
	i := 0
	for i < cube.NumSlots {
		if isAtRest(c, i) {
			run := 0
			for i+run < cube.NumSlots && isAtRest(c, i+run) {
				run++
			}
			if run >= 3 {
				tokens = append(tokens, "-"+strconv.Itoa(run))
				i += run
				continue
			}
		}
		cubie := c.Cubies[i]
		tokens = append(tokens, fmt.Sprintf("%d:%d", cubie.ID, cubie.Orient))
		i++
	}
	return strings.Join(tokens, ",")
}

func isAtRest(c *cube.Cube, slot int) bool {
	cubie := c.Cubies[slot]
	return int(cubie.ID) == slot && cubie.Orient == 0
}

// Parse is the inverse of Format: it expands "-<n>" runs back into at-rest
// slots, parses explicit "id:orient" tokens, and validates the result
// against the slot-count and state invariants of the data model before
// returning it.
func Parse(s string) (*cube.Cube, error) {
	var c cube.Cube
	slot := 0

	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, fmt.Errorf("%w: empty token", ErrSyntax)
		}

		if token[0] == '-' {
			n, err := strconv.Atoi(token[1:])
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%w: invalid run length %q", ErrSyntax, token)
			}
			if slot+n > cube.NumSlots {
				return nil, fmt.Errorf("%w: run %q overruns 26 slots at position %d", ErrSyntax, token, slot)
			}
			for k := 0; k < n; k++ {
				c.Cubies[slot] = cube.Cubie{ID: uint8(slot), Orient: 0}
				slot++
			}
			continue
		}

		idStr, orientStr, ok := strings.Cut(token, ":")
		if !ok {
			return nil, fmt.Errorf("%w: token %q missing ':'", ErrSyntax, token)
		}
		id, err1 := strconv.Atoi(idStr)
		orient, err2 := strconv.Atoi(orientStr)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: token %q is not id:orient", ErrSyntax, token)
		}
		if slot >= cube.NumSlots {
			return nil, fmt.Errorf("%w: token %q at position %d overruns 26 slots", ErrSyntax, token, slot)
		}
		if id < 0 || id >= cube.NumSlots {
			return nil, fmt.Errorf("%w: id %d out of range [0, %d)", ErrSyntax, id, cube.NumSlots)
		}
		if orient < 0 {
			return nil, fmt.Errorf("%w: negative orientation %d", ErrSyntax, orient)
		}
		c.Cubies[slot] = cube.Cubie{ID: uint8(id), Orient: uint8(orient)}
		slot++
	}

	if slot != cube.NumSlots {
		return nil, fmt.Errorf("%w: described %d slots, want %d", ErrSyntax, slot, cube.NumSlots)
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks c against the data model's invariants: ids form a
// permutation of 0..25, every orientation is in range for its piece type,
// corner orientations sum to 0 mod 3, and the orientations of the edge
// pieces currently in the 12 edge slots sum to 0 mod 2 (face pieces in
// edge slots are not counted).
func Validate(c *cube.Cube) error {
	var seen [cube.NumSlots]bool
	for slot, cubie := range c.Cubies {
		if int(cubie.ID) >= cube.NumSlots || seen[cubie.ID] {
			return fmt.Errorf("%w: slot %d has a duplicate or out-of-range id %d", ErrInvariant, slot, cubie.ID)
		}
		seen[cubie.ID] = true

		if cube.IsCorner(cubie.ID) && cubie.Orient >= 3 {
			return fmt.Errorf("%w: slot %d is a corner with orientation %d, want 0-2", ErrInvariant, slot, cubie.Orient)
		}
		if !cube.IsCorner(cubie.ID) && cubie.Orient >= 4 {
			return fmt.Errorf("%w: slot %d has orientation %d, want 0-3", ErrInvariant, slot, cubie.Orient)
		}
	}

	var cornerSum int
	for slot := 0; slot < cube.NumCorners; slot++ {
		cornerSum += int(c.Cubies[slot].Orient)
	}
	if cornerSum%3 != 0 {
		return fmt.Errorf("%w: corner orientations sum to %d, want 0 mod 3", ErrInvariant, cornerSum)
	}

	var edgeSum int
	for slot := cube.SlotUF; slot <= cube.SlotDR; slot++ {
		cubie := c.Cubies[slot]
		if cube.IsEdge(cubie.ID) {
			edgeSum += int(cubie.Orient)
		}
	}
	if edgeSum%2 != 0 {
		return fmt.Errorf("%w: edge-slot orientations sum to %d, want 0 mod 2", ErrInvariant, edgeSum)
	}

	return nil
}
