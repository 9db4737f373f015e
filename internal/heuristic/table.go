package heuristic

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ehrlich-b/mixupcube/internal/cube"
)

// Heuristic is one registered projection: a name (used to derive its file
// path), its hash function and the size of that hash's range, and the two
// generation-time optimizations the reference generator supports.
type Heuristic struct {
	Name  string
	Hash  HashFunc
	Size  uint64

	// InstackOptimization skips re-expanding a hash value already seen at
	// an equal or lesser depth within the current max-depth round.
	InstackOptimization bool

	// ValidTurnsOptimization restricts expansion, during generation, to
	// only the turns that actually change this projection's hash from
	// solved — precomputed once per heuristic.
	ValidTurnsOptimization bool
}

// Registry lists every heuristic the solver knows how to generate or load,
// in the fixed order the active set reports distances over.
var Registry = []Heuristic{
	{Name: "corners", Hash: hashCorners, Size: CornersSize, InstackOptimization: true, ValidTurnsOptimization: true},
	{Name: "edges1", Hash: hashEdges1, Size: EdgeFaceSize},
	{Name: "edges2", Hash: hashEdges2, Size: EdgeFaceSize},
	{Name: "edges3", Hash: hashEdges3, Size: EdgeFaceSize},
	{Name: "edges4", Hash: hashEdges4, Size: EdgeFaceSize},
	{Name: "edges5", Hash: hashEdges5, Size: EdgeFaceSize},
	{Name: "edges6", Hash: hashEdges6, Size: EdgeFaceSize},
	{Name: "faces1", Hash: hashFaces1, Size: EdgeFaceSize},
	{Name: "faces2", Hash: hashFaces2, Size: EdgeFaceSize},
}

// Lookup returns the registered heuristic with the given name.
func Lookup(name string) (Heuristic, error) {
	for _, h := range Registry {
		if h.Name == name {
			return h, nil
		}
	}
	return Heuristic{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
}

// FilePath returns the on-disk path a heuristic's table is stored at,
// relative to dir.
func (h Heuristic) FilePath(dir string) string {
	return filepath.Join(dir, h.Name+".ht")
}

// Generate runs the iterative-deepening BFS from solved over h's hash
// space, returning a byte table where table[hash] is the minimum turn
// count needed to reach a cube whose hash equals the solved state's.
//
// This mirrors the reference generator bit-for-bit: a fresh search-stack
// push of solved at every max-depth round, an optional instack map to skip
// re-expanding already-visited-this-round hashes, and an optional
// valid-turns precomputation that skips turns known not to change the
// hash at all.
func Generate(h Heuristic, log *logrus.Logger) ([]byte, error) {
	table := make([]byte, h.Size)
	visited := make([]bool, h.Size)
	var instack []int
	if h.InstackOptimization {
		instack = make([]int, h.Size)
	}

	var validTurns [cube.NTurnTypes]bool
	if h.ValidTurnsOptimization {
		solved := cube.NewSolved()
		solvedHash := h.Hash(&solved)
		for t := 0; t < cube.NTurnTypes; t++ {
			turned := cube.Turned(&solved, t)
			validTurns[t] = h.Hash(&turned) != solvedHash
		}
	}

	stack := cube.NewSearchStack(1000)
	nVisited := uint64(0)

	for maxDepth := 0; nVisited < h.Size; maxDepth++ {
		if log != nil {
			log.WithFields(logrus.Fields{"heuristic": h.Name, "depth": maxDepth, "visited": nVisited, "size": h.Size}).
				Info("searching heuristic generation depth")
		}

		solved := cube.NewSolved()
		stack.Clear()
		stack.Push(&solved, cube.NoPreviousTurn, 0)

		if instack != nil {
			for i := range instack {
				instack[i] = 0
			}
		}

		for {
			current, _, depth, ok := stack.Pop()
			if !ok {
				break
			}

			hash := h.Hash(&current)
			if hash >= h.Size {
				return nil, fmt.Errorf("%w: %s hashed to %d, want [0, %d)", ErrHashOutOfRange, h.Name, hash, h.Size)
			}

			if instack != nil {
				if instack[hash] != 0 && instack[hash] <= depth {
					continue
				}
				instack[hash] = depth
			}

			if depth != maxDepth {
				for t := cube.NTurnTypes - 1; t >= 0; t-- {
					if h.ValidTurnsOptimization && !validTurns[t] {
						continue
					}
					next := cube.Turned(&current, t)
					stack.Push(&next, t, depth+1)
				}
			} else if !visited[hash] {
				visited[hash] = true
				table[hash] = byte(depth)
				nVisited++
				if nVisited >= h.Size {
					break
				}
			}
		}
	}

	return table, nil
}

// Save writes table to heuristics/<name>.ht under dir, creating dir if
// necessary.
func Save(h Heuristic, dir string, table []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("heuristic: creating %s: %w", dir, err)
	}
	if uint64(len(table)) != h.Size {
		return fmt.Errorf("heuristic: table for %s has %d bytes, want %d", h.Name, len(table), h.Size)
	}
	if err := os.WriteFile(h.FilePath(dir), table, 0o644); err != nil {
		return fmt.Errorf("heuristic: writing %s: %w", h.FilePath(dir), err)
	}
	return SaveChecksum(h, dir, table)
}

// Load reads a previously-saved table from dir. A missing file is reported
// as an error the caller may treat as non-fatal (see Set.Load).
func Load(h Heuristic, dir string) ([]byte, error) {
	data, err := os.ReadFile(h.FilePath(dir))
	if err != nil {
		return nil, fmt.Errorf("heuristic: reading %s: %w", h.FilePath(dir), err)
	}
	if uint64(len(data)) != h.Size {
		return nil, fmt.Errorf("%w: %s has %d bytes, want %d", ErrShortRead, h.FilePath(dir), len(data), h.Size)
	}
	return data, nil
}
