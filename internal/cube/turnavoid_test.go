package cube

import "testing"

func TestNoPreviousTurnAvoidsNothing(t *testing.T) {
	for next := 0; next < NTurnTypes; next++ {
		if Avoided(NoPreviousTurn, next) {
			t.Errorf("row %d (no previous turn) should avoid nothing, but avoids turn %d", NoPreviousTurn, next)
		}
	}
}

func TestTurnAvoidTableHasRightShape(t *testing.T) {
	if len(TurnAvoidTable) != NTurnTypes+1 {
		t.Fatalf("len(TurnAvoidTable) = %d, want %d", len(TurnAvoidTable), NTurnTypes+1)
	}
}

func TestAFaceTurnAvoidsItsOwnRepeats(t *testing.T) {
	// Having just turned U once (turn 0), turning U again in any of its
	// other three forms (90/180/270) is redundant: it could always have
	// been folded into the first turn instead.
	for _, next := range []int{0, 6, 12} {
		if !Avoided(0, next) {
			t.Errorf("after turn 0 (U), turn %d on the same face should be avoided", next)
		}
	}
}
