package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 5, true},
		{"last column", 5, 7, true},
		{"right edge is exclusive", 6, 3, false},
		{"bottom edge is exclusive", 2, 8, false},
		{"left of rect", 1, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 10, 20)
	if r.Right() != 11 {
		t.Errorf("Right() = %d, expected 11", r.Right())
	}
	if r.Bottom() != 22 {
		t.Errorf("Bottom() = %d, expected 22", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	got := NewRect(0, 0, 10, 6).Inset(1)
	want := NewRect(1, 1, 8, 4)
	if got != want {
		t.Errorf("Inset(1) = %+v, expected %+v", got, want)
	}

	got = NewRect(0, 0, 1, 1).Inset(2)
	if got.W != 0 || got.H != 0 {
		t.Errorf("Inset past zero should clamp, got %+v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{7, 3, 1},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := Wrap(tt.val, tt.n); got != tt.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tt.val, tt.n, got, tt.expected)
		}
	}
}
