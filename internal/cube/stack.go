package cube

// searchFrame is one LIFO entry: a cube state, the turn that produced it
// (NoPreviousTurn if none yet), and its depth from the search root.
type searchFrame struct {
	Cube  Cube
	Turn  int
	Depth int
}

// SearchStack is an explicit, dynamically-growing LIFO of search frames,
// used by the solver in place of recursion so that iterative deepening can
// reuse one buffer across every depth round instead of re-entering the call
// stack from scratch.
type SearchStack struct {
	frames []searchFrame
}

// NewSearchStack returns an empty stack pre-sized to initialCapacity
// frames.
func NewSearchStack(initialCapacity int) *SearchStack {
	return &SearchStack{frames: make([]searchFrame, 0, initialCapacity)}
}

// Push adds a frame to the top of the stack. When the backing array is
// full, it grows by at least 100 frames, mirroring the reference
// implementation's growth policy.
func (s *SearchStack) Push(c *Cube, turn, depth int) {
	if len(s.frames) == cap(s.frames) {
		grown := make([]searchFrame, len(s.frames), cap(s.frames)+100)
		copy(grown, s.frames)
		s.frames = grown
	}
	s.frames = append(s.frames, searchFrame{Cube: *c, Turn: turn, Depth: depth})
}

// Pop removes and returns the top frame. The second return value is false
// when the stack was empty.
func (s *SearchStack) Pop() (Cube, int, int, bool) {
	n := len(s.frames)
	if n == 0 {
		return Cube{}, 0, 0, false
	}
	f := s.frames[n-1]
	s.frames = s.frames[:n-1]
	return f.Cube, f.Turn, f.Depth, true
}

// Peek returns the top frame without removing it.
func (s *SearchStack) Peek() (Cube, int, int, bool) {
	n := len(s.frames)
	if n == 0 {
		return Cube{}, 0, 0, false
	}
	f := s.frames[n-1]
	return f.Cube, f.Turn, f.Depth, true
}

// Clear empties the stack without releasing its backing array, so it can be
// reused for the next iterative-deepening round.
func (s *SearchStack) Clear() {
	s.frames = s.frames[:0]
}

// Len reports the number of frames currently on the stack.
func (s *SearchStack) Len() int {
	return len(s.frames)
}
