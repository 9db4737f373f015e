package cube

import (
	"fmt"
	"strconv"
	"strings"
)

// faceLetters and sliceLetters map turn families to their notation letter,
// in the same order as the 0..5 face-turn family index and the 0..2 slice
// family index.
var faceLetters = [6]byte{'U', 'D', 'F', 'B', 'L', 'R'}
var sliceLetters = [3]byte{'M', 'E', 'S'}

// ParseTurn parses a single turn in notation form into its 0-38 turn index.
//
// Face turns are one of the letters U D F B L R, optionally followed by '
// (270 degrees) or 2 (180 degrees); a bare letter is a 90-degree clockwise
// turn. Slice turns are one of M, E, S, optionally followed by a digit
// 2-7 giving the number of 45-degree repeats; a bare letter is one repeat.
func ParseTurn(notation string) (int, error) {
	notation = strings.TrimSpace(notation)
	if notation == "" {
		return 0, fmt.Errorf("%w: empty notation", ErrInvalidTurn)
	}

	letter := notation[0]
	rest := notation[1:]

	for family, l := range faceLetters {
		if l != letter {
			continue
		}
		switch rest {
		case "":
			return family, nil
		case "2":
			return 6 + family, nil
		case "'":
			return 12 + family, nil
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidTurn, notation)
		}
	}

	for family, l := range sliceLetters {
		if l != letter {
			continue
		}
		if rest == "" {
			return 18 + family, nil
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 2 || n > 7 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTurn, notation)
		}
		return 18 + family + 3*(n-1), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidTurn, notation)
}

// ParseTurns splits sequence on whitespace and/or commas and parses each
// token with ParseTurn.
func ParseTurns(sequence string) ([]int, error) {
	fields := strings.FieldsFunc(sequence, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	turns := make([]int, 0, len(fields))
	for _, f := range fields {
		t, err := ParseTurn(f)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// FormatTurn renders a 0-38 turn index back into notation.
func FormatTurn(t int) string {
	if t < 18 {
		family := t % 6
		switch t / 6 {
		case 0:
			return string(faceLetters[family])
		case 1:
			return string(faceLetters[family]) + "2"
		default:
			return string(faceLetters[family]) + "'"
		}
	}
	family := (t - 18) % 3
	reps := 1 + (t-18)/3
	if reps == 1 {
		return string(sliceLetters[family])
	}
	return string(sliceLetters[family]) + strconv.Itoa(reps)
}

// FormatTurns renders a sequence of turn indices as a space-separated
// notation string.
func FormatTurns(turns []int) string {
	parts := make([]string, len(turns))
	for i, t := range turns {
		parts[i] = FormatTurn(t)
	}
	return strings.Join(parts, " ")
}
