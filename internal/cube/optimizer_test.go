package cube

import "testing"

func TestOptimizeTurnsCombinesSameFace(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"R R", "R2"},
		{"R R R", "R'"},
		{"R R'", ""},
		{"R2 R2", ""},
		{"R2 R", "R'"},
		{"U D U", "U D U"}, // different faces never combine
		{"M M", "M2"},
		{"M M M M M M M M", ""}, // full rotation
		{"M7 M", ""},
	}
	for _, tc := range cases {
		got, err := OptimizeNotation(tc.in)
		if err != nil {
			t.Fatalf("OptimizeNotation(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("OptimizeNotation(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsCancellingSequence(t *testing.T) {
	turns, err := ParseTurns("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	if IsCancellingSequence(turns) {
		t.Fatal("R U R' U' does not cancel to nothing")
	}

	turns, err = ParseTurns("R R'")
	if err != nil {
		t.Fatal(err)
	}
	if !IsCancellingSequence(turns) {
		t.Fatal("R R' should cancel to nothing")
	}
}

func TestTurnCount(t *testing.T) {
	turns, err := ParseTurns("R R R2")
	if err != nil {
		t.Fatal(err)
	}
	if n := TurnCount(turns); n != 0 {
		t.Errorf("TurnCount(R R R2) = %d, want 0", n)
	}
}
