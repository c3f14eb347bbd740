package scratch

import "testing"

func TestBuffer_Chain(t *testing.T) {
	b := New(8)
	got := b.S("frame ").I(42).S(" | ").F(16.6667, 2).S(" ms ").R('✓').String()

	if want := "frame 42 | 16.67 ms ✓"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuffer_ResetKeepsCapacity(t *testing.T) {
	b := New(4)
	b.S("a long enough string to grow")
	grown := b.Cap()

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() after Reset = %d", b.Len())
	}
	if b.Cap() != grown {
		t.Errorf("Cap() after Reset = %d, want %d", b.Cap(), grown)
	}
	if b.View() != "" {
		t.Errorf("View() of empty buffer = %q", b.View())
	}
}

func TestBuffer_MarkAndPad(t *testing.T) {
	b := New(0)
	b.S("id:")
	m := b.Mark()
	b.Pad(3, '.').S("x")

	if got := b.From(m); got != "...x" {
		t.Errorf("From(mark) = %q, want %q", got, "...x")
	}
	if got := b.View(); got != "id:...x" {
		t.Errorf("View() = %q", got)
	}
	b.Pad(-1, '!')
	if b.Len() != 7 {
		t.Errorf("negative Pad changed length to %d", b.Len())
	}
}
