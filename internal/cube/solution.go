package cube

// SolutionSeparator and SolutionTerminator are the wire-format sentinels
// used by SolutionList's flattened int buffer: -1 separates consecutive
// solutions, -2 terminates the buffer. A lone [-2] means "already solved".
const (
	SolutionSeparator = -1
	SolutionTerminator = -2
)

// SolutionList accumulates zero or more turn-sequences, each a solution to
// some search, concatenated into one buffer with separator/terminator
// sentinels. This is the externally promised wire format: GetIntList's
// exact rendering must never change.
type SolutionList struct {
	buffer []int
	count  int
}

// NewSolutionList returns an empty list whose buffer is [-2].
func NewSolutionList() *SolutionList {
	return &SolutionList{buffer: []int{SolutionTerminator}}
}

// Add appends a copy of seq as a new solution. The first addition replaces
// the lone terminator with [seq..., -2]; later additions splice in
// [-1, seq...] ahead of the trailing terminator.
func (s *SolutionList) Add(seq []int) {
	if s.count == 0 {
		s.buffer = make([]int, 0, len(seq)+1)
		s.buffer = append(s.buffer, seq...)
		s.buffer = append(s.buffer, SolutionTerminator)
		s.count++
		return
	}
	s.buffer = s.buffer[:len(s.buffer)-1] // drop trailing terminator
	s.buffer = append(s.buffer, SolutionSeparator)
	s.buffer = append(s.buffer, seq...)
	s.buffer = append(s.buffer, SolutionTerminator)
	s.count++
}

// Count returns the number of solutions added so far.
func (s *SolutionList) Count() int {
	return s.count
}

// GetIntList clones the internal buffer: the externally promised wire
// format.
func (s *SolutionList) GetIntList() []int {
	out := make([]int, len(s.buffer))
	copy(out, s.buffer)
	return out
}
