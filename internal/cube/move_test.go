package cube

import "testing"

func TestParseTurnFaceForms(t *testing.T) {
	cases := []struct {
		notation string
		want     int
	}{
		{"U", 0}, {"D", 1}, {"F", 2}, {"B", 3}, {"L", 4}, {"R", 5},
		{"U2", 6}, {"R2", 11},
		{"U'", 12}, {"R'", 17},
	}
	for _, tc := range cases {
		got, err := ParseTurn(tc.notation)
		if err != nil {
			t.Errorf("ParseTurn(%q) returned error: %v", tc.notation, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTurn(%q) = %d, want %d", tc.notation, got, tc.want)
		}
	}
}

func TestParseTurnSliceForms(t *testing.T) {
	cases := []struct {
		notation string
		want     int
	}{
		{"M", 18}, {"E", 19}, {"S", 20},
		{"M2", 21}, {"M7", 36}, {"S7", 38},
	}
	for _, tc := range cases {
		got, err := ParseTurn(tc.notation)
		if err != nil {
			t.Errorf("ParseTurn(%q) returned error: %v", tc.notation, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTurn(%q) = %d, want %d", tc.notation, got, tc.want)
		}
	}
}

func TestParseTurnInvalid(t *testing.T) {
	invalid := []string{"", "X", "U3", "M1", "M8", "R''"}
	for _, notation := range invalid {
		if _, err := ParseTurn(notation); err == nil {
			t.Errorf("ParseTurn(%q) should have failed", notation)
		}
	}
}

func TestFormatTurnRoundTrip(t *testing.T) {
	for i := 0; i < NTurnTypes; i++ {
		notation := FormatTurn(i)
		got, err := ParseTurn(notation)
		if err != nil {
			t.Fatalf("turn %d formatted as %q, which failed to re-parse: %v", i, notation, err)
		}
		if got != i {
			t.Errorf("turn %d formatted as %q, re-parsed as %d", i, notation, got)
		}
	}
}

func TestParseTurnsSplitsOnWhitespaceAndCommas(t *testing.T) {
	got, err := ParseTurns("U, R' F2\nM3")
	if err != nil {
		t.Fatalf("ParseTurns returned error: %v", err)
	}
	want := []int{0, 17, 8, 24}
	if len(got) != len(want) {
		t.Fatalf("ParseTurns returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("turn %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
