package cube

import "errors"

// ErrInvalidTurn is wrapped by ParseTurn/ParseTurns when notation doesn't
// describe one of the 39 valid turns.
var ErrInvalidTurn = errors.New("cube: invalid turn notation")
