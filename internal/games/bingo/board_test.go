package bingo

import (
	"math/rand"
	"sort"
	"testing"
)

func TestNewState(t *testing.T) {
	s := NewState()
	for i, v := range s.Tiles {
		if v != i+1 {
			t.Errorf("Tiles[%d] = %d, want %d", i, v, i+1)
		}
	}
	if s.Selected != 0 {
		t.Errorf("Selected = %b, want empty", s.Selected)
	}
	if s.Latch != Armed {
		t.Errorf("Latch = %v, want ARMED", s.Latch)
	}
}

func TestToggleParity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		s := NewState()
		counts := make(map[int]int)

		for i := 0; i < rng.Intn(80); i++ {
			pos := rng.Intn(Cells)
			counts[pos]++
			s = Toggle(s, pos)
		}

		for pos := 0; pos < Cells; pos++ {
			want := counts[pos]%2 == 1
			if s.Selected.Has(pos) != want {
				t.Fatalf("trial %d: Has(%d) = %v, toggled %d times", trial, pos, s.Selected.Has(pos), counts[pos])
			}
		}
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	s := Toggle(Toggle(NewState(), 3), 17)
	before := s.Selected

	for pos := 0; pos < Cells; pos++ {
		after := Toggle(Toggle(s, pos), pos).Selected
		if after != before {
			t.Errorf("double toggle of %d changed selection: %b -> %b", pos, before, after)
		}
	}
}

func TestToggleOutOfRange(t *testing.T) {
	s := NewState()
	for _, pos := range []int{-1, 25, 100} {
		got := Toggle(s, pos)
		if got != s {
			t.Errorf("Toggle(%d) changed the state", pos)
		}
	}
	if s.Selected.Has(-1) || s.Selected.Has(25) {
		t.Error("Has() must be false for out-of-range positions")
	}
}

func TestShufflePermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewState()

	for i := 0; i < 100; i++ {
		s = Toggle(s, i%Cells)
		s.Latch = Fired

		s = Shuffle(s, rng)

		values := append([]int(nil), s.Tiles[:]...)
		sort.Ints(values)
		for j, v := range values {
			if v != j+1 {
				t.Fatalf("shuffle %d: sorted tiles[%d] = %d, want %d", i, j, v, j+1)
			}
		}
		if s.Selected != 0 {
			t.Fatalf("shuffle %d: selection not cleared: %b", i, s.Selected)
		}
		if s.Latch != Armed {
			t.Fatalf("shuffle %d: latch not re-armed", i)
		}
		if s.Epoch != i+1 {
			t.Fatalf("shuffle %d: Epoch = %d, want %d", i, s.Epoch, i+1)
		}
		if s.Marks != 0 {
			t.Fatalf("shuffle %d: Marks = %d, want 0", i, s.Marks)
		}
	}
}

func TestShuffleReorders(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	orig := NewState()

	moved := false
	for i := 0; i < 5 && !moved; i++ {
		if Shuffle(orig, rng).Tiles != orig.Tiles {
			moved = true
		}
	}
	if !moved {
		t.Error("five shuffles never changed the tile order")
	}
}

func TestSelectionPositions(t *testing.T) {
	var sel Selection
	for _, pos := range []int{24, 0, 12} {
		sel = sel.Toggle(pos)
	}
	got := sel.Positions()
	want := []int{0, 12, 24}
	if len(got) != len(want) {
		t.Fatalf("Positions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions() = %v, want %v", got, want)
		}
	}
	if sel.Len() != 3 {
		t.Errorf("Len() = %d, want 3", sel.Len())
	}
}
