package heuristic

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/gtank/blake2/blake2b"
)

// checksumSize is the digest length used for heuristic-file integrity
// checks: large enough to make accidental collision practically
// impossible for files of this size, small enough to keep the sidecar
// file trivial.
const checksumSize = 32

func sumTable(table []byte) (string, error) {
	d, err := blake2b.NewDigest(nil, nil, nil, checksumSize)
	if err != nil {
		return "", fmt.Errorf("heuristic: initializing checksum: %w", err)
	}
	if _, err := d.Write(table); err != nil {
		return "", fmt.Errorf("heuristic: hashing table: %w", err)
	}
	return hex.EncodeToString(d.Sum(nil)), nil
}

// SaveChecksum writes a hex-encoded blake2b digest of table alongside the
// heuristic file at <name>.ht.sum, so that Set.LoadAll can detect silent
// corruption of a table whose length is still right. A truncated file
// never reaches the checksum: Load already rejects it with ErrShortRead.
func SaveChecksum(h Heuristic, dir string, table []byte) error {
	sum, err := sumTable(table)
	if err != nil {
		return err
	}
	return os.WriteFile(h.FilePath(dir)+".sum", []byte(sum+"\n"), 0o644)
}

// VerifyChecksum recomputes table's digest and compares it against the
// sidecar file written by SaveChecksum. A missing sidecar file is reported
// as a distinct (non-fatal to the caller) error: older heuristic files
// predate this check.
func VerifyChecksum(h Heuristic, dir string, table []byte) error {
	want, err := os.ReadFile(h.FilePath(dir) + ".sum")
	if err != nil {
		return fmt.Errorf("heuristic: no checksum sidecar for %s: %w", h.Name, err)
	}
	got, err := sumTable(table)
	if err != nil {
		return err
	}
	if string(want) != got+"\n" {
		return fmt.Errorf("heuristic: checksum mismatch for %s: table may be corrupt or truncated", h.Name)
	}
	return nil
}
