package heuristic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ehrlich-b/mixupcube/internal/cube"
)

// tinyHeuristic projects onto a single face's orientation (mod 4), a hash
// space small enough to fully generate in a test without needing the real
// multi-million-entry tables.
var tinyHeuristic = Heuristic{
	Name:                   "tiny",
	Hash:                   func(c *cube.Cube) uint64 { return uint64(c.Cubies[cube.SlotU].Orient) },
	Size:                   4,
	ValidTurnsOptimization: true,
}

func TestGenerateTinyHeuristicFillsEveryHash(t *testing.T) {
	table, err := Generate(tinyHeuristic, nil)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if uint64(len(table)) != tinyHeuristic.Size {
		t.Fatalf("len(table) = %d, want %d", len(table), tinyHeuristic.Size)
	}
	// The solved cube always hashes to 0 at distance 0.
	if table[0] != 0 {
		t.Errorf("table[0] = %d, want 0 (solved state)", table[0])
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	table := make([]byte, tinyHeuristic.Size)
	for i := range table {
		table[i] = byte(i)
	}

	if err := Save(tinyHeuristic, dir, table); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(tinyHeuristic, dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	for i := range table {
		if loaded[i] != table[i] {
			t.Errorf("loaded[%d] = %d, want %d", i, loaded[i], table[i])
		}
	}

	if err := VerifyChecksum(tinyHeuristic, dir, loaded); err != nil {
		t.Errorf("VerifyChecksum of an unmodified file should pass: %v", err)
	}
}

func TestVerifyChecksumCatchesCorruption(t *testing.T) {
	dir := t.TempDir()
	table := []byte{0, 1, 2, 3}
	if err := Save(tinyHeuristic, dir, table); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	corrupted := []byte{0, 1, 2, 9}
	if err := VerifyChecksum(tinyHeuristic, dir, corrupted); err == nil {
		t.Fatal("VerifyChecksum should detect a table that doesn't match its sidecar digest")
	}
}

func TestVerifyChecksumMissingSidecarIsAnError(t *testing.T) {
	dir := t.TempDir()
	table := []byte{0, 1, 2, 3}
	if err := os.WriteFile(filepath.Join(dir, "tiny.ht"), table, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := VerifyChecksum(tinyHeuristic, dir, table); err == nil {
		t.Fatal("VerifyChecksum should fail when no sidecar file exists")
	}
}

func TestSetGetDistDefaultsToZero(t *testing.T) {
	s := NewSet()
	c := cube.NewSolved()
	if got := s.GetDist(&c); got != 0 {
		t.Errorf("GetDist on an empty set = %d, want 0", got)
	}
}

func TestLookupUnknownHeuristic(t *testing.T) {
	if _, err := Lookup("does-not-exist"); err == nil {
		t.Fatal("Lookup should fail for an unregistered heuristic name")
	}
}

func TestHashCornersSolvedIsZero(t *testing.T) {
	c := cube.NewSolved()
	if hashCorners(&c) != 0 {
		t.Errorf("hashCorners(solved) = %d, want 0", hashCorners(&c))
	}
}

func TestHashEdgesGenericSolvedValues(t *testing.T) {
	// Solved slots hold their own ids, which are not the Lehmer code's
	// zero digits, so the solved hash is a fixed nonzero value.
	c := cube.NewSolved()
	if hashEdges1(&c) != 27877 {
		t.Errorf("hashEdges1(solved) = %d, want 27877", hashEdges1(&c))
	}
	if hashFaces1(&c) != 78043 {
		t.Errorf("hashFaces1(solved) = %d, want 78043", hashFaces1(&c))
	}
}
