package cube

import "testing"

func TestSearchStackPushPop(t *testing.T) {
	s := NewSearchStack(4)
	c1 := NewSolved()
	Turn(&c1, 0)
	s.Push(&c1, 0, 1)

	c2 := NewSolved()
	Turn(&c2, 5)
	s.Push(&c2, 5, 2)

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	got, turn, depth, ok := s.Pop()
	if !ok {
		t.Fatal("Pop() on non-empty stack returned ok=false")
	}
	if got != c2 || turn != 5 || depth != 2 {
		t.Errorf("Pop() = (%v, %d, %d), want (%v, 5, 2)", got, turn, depth, c2)
	}

	if _, _, _, ok := s.Pop(); !ok {
		t.Fatal("second Pop() should still succeed")
	}
	if _, _, _, ok := s.Pop(); ok {
		t.Fatal("Pop() on empty stack should return ok=false")
	}
}

func TestSearchStackGrowsPast100(t *testing.T) {
	s := NewSearchStack(1)
	c := NewSolved()
	for i := 0; i < 250; i++ {
		s.Push(&c, i%NTurnTypes, i)
	}
	if s.Len() != 250 {
		t.Fatalf("Len() = %d, want 250", s.Len())
	}
}

func TestSearchStackClearKeepsCapacity(t *testing.T) {
	s := NewSearchStack(10)
	c := NewSolved()
	s.Push(&c, 0, 0)
	s.Push(&c, 1, 1)
	capBefore := cap(s.frames)
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len() after Clear() = %d, want 0", s.Len())
	}
	if cap(s.frames) != capBefore {
		t.Fatalf("cap after Clear() = %d, want %d", cap(s.frames), capBefore)
	}
	s.Push(&c, 2, 2)
	if s.Len() != 1 {
		t.Fatalf("Len() after push following Clear() = %d, want 1", s.Len())
	}
}

func TestSearchStackPeekDoesNotRemove(t *testing.T) {
	s := NewSearchStack(2)
	c := NewSolved()
	s.Push(&c, 3, 1)
	if _, turn, _, ok := s.Peek(); !ok || turn != 3 {
		t.Fatalf("Peek() = turn %d, ok %v, want turn 3, ok true", turn, ok)
	}
	if s.Len() != 1 {
		t.Fatal("Peek() should not remove the frame")
	}
}
