package cube

// TurnAvoidTable holds, for each previous turn (0-38, plus the sentinel 39
// for "no previous turn"), a 64-bit mask with one bit per next-turn: a set
// bit means avoid that next turn because it is redundant after the
// previous one (it can never be part of a shortest solution that another,
// unmasked turn couldn't reach just as fast).
//
// This table is an external data input, not derived here: it is bit-
// identical to the reference generator's table and must not be
// regenerated from first principles.
var TurnAvoidTable = [NTurnTypes + 1]uint64{
	0x24924830c3, 0x0000002082, 0x492490c30c, 0x0000008208, 0x1249270c30, 0x0000020820,
	0x24924830c3, 0x0000002082, 0x492490c30c, 0x0000008208, 0x1249270c30, 0x0000020820,
	0x24924830c3, 0x0000002082, 0x492490c30c, 0x0000008208, 0x1249270c30, 0x0000020820,
	0x1249260820, 0x2492482082, 0x4924908208,
	0x1249260820, 0x2492482082, 0x4924908208,
	0x1249260820, 0x2492482082, 0x4924908208,
	0x1249260820, 0x2492482082, 0x4924908208,
	0x1249260820, 0x2492482082, 0x4924908208,
	0x1249260820, 0x2492482082, 0x4924908208,
	0x1249260820, 0x2492482082, 0x4924908208,
	0x0000000000,
}

// Avoided reports whether next should be skipped as a follow-up to prev.
func Avoided(prev, next int) bool {
	return TurnAvoidTable[prev]&(1<<uint(next)) != 0
}
