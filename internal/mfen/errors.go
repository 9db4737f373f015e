package mfen

import "errors"

// ErrSyntax is wrapped by Parse when the input doesn't match mfen's token
// grammar (bad run length, malformed id:orient pair, wrong slot count).
var ErrSyntax = errors.New("mfen: syntax error")

// ErrInvariant is wrapped by Validate when the parsed state violates one
// of the data model's structural invariants (duplicate/out-of-range id,
// orientation out of range, or a corner/edge orientation-sum parity
// violation).
var ErrInvariant = errors.New("mfen: invariant violation")
