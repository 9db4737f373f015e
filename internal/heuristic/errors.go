package heuristic

import "errors"

// ErrUnknownName is wrapped by Lookup when asked for a heuristic not in
// Registry.
var ErrUnknownName = errors.New("heuristic: unknown name")

// ErrHashOutOfRange is wrapped by Generate when a hash function returns a
// value outside [0, size): a bug in that hash function, since the contract
// requires it to be bijective onto exactly that range.
var ErrHashOutOfRange = errors.New("heuristic: hash value out of range")

// ErrShortRead is wrapped by Load when a table file's length doesn't match
// the heuristic's declared size: a truncated write, most likely from a
// generator run that was killed partway through.
var ErrShortRead = errors.New("heuristic: short read")
