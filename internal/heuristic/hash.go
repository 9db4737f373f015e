// Package heuristic builds and serves the admissible pruning tables the
// solver uses during IDDFS: for a registered projection of the cube (a
// fixed subset of cubie slots), a bijective hash maps every reachable
// combination of those slots' ids and orientations onto a dense integer
// range, and a byte table records the minimum turn count to reach a hash
// equal to the solved state's, for every hash value.
package heuristic

import "github.com/ehrlich-b/mixupcube/internal/cube"

// HashFunc maps a cube to a dense index in [0, Size) for some projection.
type HashFunc func(c *cube.Cube) uint64

// CornersSize and EdgeFaceSize are the hash-space sizes shared by every
// registered heuristic: corners covers 6 of 7 independent corners (the
// seventh, and UFL, are each fixed by the rest), edges/faces heuristics
// cover 4 of the 18 edge-or-face pieces.
const (
	CornersSize  = 7 * 6 * 5 * 4 * 3 * 2 * 3 * 3 * 3 * 3 * 3 * 3 // 7! * 3^6
	EdgeFaceSize = 18 * 17 * 16 * 15 * 4 * 4 * 4 * 4              // 18!/14! * 4^4
)

// hashCorners reads the first six corner slots (0..5) and Lehmer-codes
// their ids, then appends their orientations, mirroring the reference
// generator's hash_corners bit-exactly.
func hashCorners(c *cube.Cube) uint64 {
	var ids [6]uint8
	var orients [6]uint8
	for i := 0; i < 6; i++ {
		ids[i] = c.Cubies[i].ID
		orients[i] = c.Cubies[i].Orient
	}

	var result, max uint64 = 0, 1
	for i := 0; i < 6; i++ {
		result += max * uint64(ids[i])
		max *= uint64(7 - i)
		for j := i + 1; j < 6; j++ {
			if ids[j] > ids[i] {
				ids[j]--
			}
		}
	}
	for i := 0; i < 6; i++ {
		result += max * uint64(orients[i])
		max *= 3
	}
	return result
}

// hashEdgesGeneric hashes the four given slots: ids are shifted down by 7
// (edges+faces occupy ids 8..25, so the Lehmer code runs over 1..18), then
// orientations (mod 4) are appended, mirroring hash_edges_generic.
func hashEdgesGeneric(c *cube.Cube, slots [4]cube.SlotID) uint64 {
	var ids [4]uint8
	var orients [4]uint8
	for i, slot := range slots {
		ids[i] = c.Cubies[slot].ID - 7
		orients[i] = c.Cubies[slot].Orient
	}

	var result, max uint64 = 0, 1
	for i := 0; i < 4; i++ {
		result += max * uint64(ids[i])
		max *= uint64(18 - i)
		for j := i + 1; j < 4; j++ {
			if ids[j] > ids[i] {
				ids[j]--
			}
		}
	}
	for i := 0; i < 4; i++ {
		result += max * uint64(orients[i])
		max *= 4
	}
	return result
}

// Per-heuristic slot sets, from the canonical cubie enum.
var (
	edges1Slots = [4]cube.SlotID{cube.SlotU, cube.SlotUF, cube.SlotDR, cube.SlotBL}
	edges2Slots = [4]cube.SlotID{cube.SlotL, cube.SlotFL, cube.SlotUR, cube.SlotDB}
	edges3Slots = [4]cube.SlotID{cube.SlotD, cube.SlotDF, cube.SlotUL, cube.SlotBR}
	edges4Slots = [4]cube.SlotID{cube.SlotR, cube.SlotFR, cube.SlotDL, cube.SlotUB}
	edges5Slots = [4]cube.SlotID{cube.SlotF, cube.SlotDF, cube.SlotFR, cube.SlotUL}
	edges6Slots = [4]cube.SlotID{cube.SlotB, cube.SlotUB, cube.SlotBR, cube.SlotDL}
	faces1Slots = [4]cube.SlotID{cube.SlotU, cube.SlotD, cube.SlotL, cube.SlotR}
	faces2Slots = [4]cube.SlotID{cube.SlotU, cube.SlotD, cube.SlotF, cube.SlotB}
)

func hashEdges1(c *cube.Cube) uint64 { return hashEdgesGeneric(c, edges1Slots) }
func hashEdges2(c *cube.Cube) uint64 { return hashEdgesGeneric(c, edges2Slots) }
func hashEdges3(c *cube.Cube) uint64 { return hashEdgesGeneric(c, edges3Slots) }
func hashEdges4(c *cube.Cube) uint64 { return hashEdgesGeneric(c, edges4Slots) }
func hashEdges5(c *cube.Cube) uint64 { return hashEdgesGeneric(c, edges5Slots) }
func hashEdges6(c *cube.Cube) uint64 { return hashEdgesGeneric(c, edges6Slots) }
func hashFaces1(c *cube.Cube) uint64 { return hashEdgesGeneric(c, faces1Slots) }
func hashFaces2(c *cube.Cube) uint64 { return hashEdgesGeneric(c, faces2Slots) }
