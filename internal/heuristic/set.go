package heuristic

import (
	"github.com/sirupsen/logrus"

	"github.com/ehrlich-b/mixupcube/internal/cube"
)

// loaded pairs a registered heuristic with its in-memory table.
type loaded struct {
	heuristic Heuristic
	table     []byte
}

// Set is the active collection of loaded heuristic tables the solver
// consults. It is process-wide state in the reference implementation; here
// it is an explicit value threaded into the solver instead, so that two
// solves never share mutable state. A Set is read-only after Load returns
// and is safe for concurrent use by multiple solves.
type Set struct {
	loaded []loaded
}

// NewSet returns an empty active set: GetDist will report 0 for every cube
// until heuristics are loaded into it.
func NewSet() *Set {
	return &Set{}
}

// Load reads name's table from dir and adds it to the active set. A
// missing or malformed file is returned as an error; callers may choose to
// log and continue (the solver remains correct, just slower, without this
// projection's pruning).
func (s *Set) Load(name, dir string) error {
	h, err := Lookup(name)
	if err != nil {
		return err
	}
	table, err := Load(h, dir)
	if err != nil {
		return err
	}
	s.loaded = append(s.loaded, loaded{heuristic: h, table: table})
	return nil
}

// LoadAll attempts to load every registered heuristic from dir, logging (at
// warn level, if log is non-nil) and skipping any that fail to load. Each
// successfully loaded table is also checksum-verified; a mismatch is
// logged but the table is kept active (a pruning bound that happens to be
// wrong can cost search time or solution length, but every returned
// solution is still confirmed against the real predicate).
func (s *Set) LoadAll(dir string, log *logrus.Logger) {
	for _, h := range Registry {
		if err := s.Load(h.Name, dir); err != nil {
			if log != nil {
				log.WithError(err).WithField("heuristic", h.Name).Warn("heuristic table not loaded, solver will prune less")
			}
			continue
		}
		l := &s.loaded[len(s.loaded)-1]
		if err := VerifyChecksum(l.heuristic, dir, l.table); err != nil && log != nil {
			log.WithError(err).WithField("heuristic", h.Name).Warn("heuristic checksum verification failed")
		}
	}
}

// Unload discards every loaded table, returning the set to empty.
func (s *Set) Unload() {
	s.loaded = nil
}

// Len reports how many heuristics are currently active.
func (s *Set) Len() int {
	return len(s.loaded)
}

// Names returns the names of every currently active heuristic, in load
// order.
func (s *Set) Names() []string {
	names := make([]string, len(s.loaded))
	for i, l := range s.loaded {
		names[i] = l.heuristic.Name
	}
	return names
}

// GetDist returns the admissible lower bound on solve distance for c: the
// max, over every active heuristic, of that heuristic's table lookup. An
// empty set (nothing loaded) returns 0, which prunes nothing but is still
// admissible.
func (s *Set) GetDist(c *cube.Cube) uint8 {
	var maxDist uint8
	for _, l := range s.loaded {
		dist := l.table[l.heuristic.Hash(c)]
		if dist > maxDist {
			maxDist = dist
		}
	}
	return maxDist
}
