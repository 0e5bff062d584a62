package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition(3, 5)
	assert.Equal(t, 3.0, p.X)
	assert.Equal(t, 5.0, p.Y)
}

func TestPosition_DistanceTo(t *testing.T) {
	tests := []struct {
		name     string
		from     Position
		to       Position
		expected float64
	}{
		{"PythagoreanTriple", Position{0, 0}, Position{3, 4}, 5.0},
		{"SamePoint", Position{7, -2}, Position{7, -2}, 0.0},
		{"Horizontal", Position{-1, 0}, Position{4, 0}, 5.0},
		{"Vertical", Position{0, 2}, Position{0, -6}, 8.0},
		{"Diagonal", Position{10, 20}, Position{30, 40}, math.Sqrt(800)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.DistanceTo(tt.to))
		})
	}
}

func TestPosition_DistanceIsSymmetric(t *testing.T) {
	a := Position{1.5, -2.25}
	b := Position{-4, 8}
	assert.Equal(t, a.DistanceTo(b), b.DistanceTo(a))
}

func TestPosition_AddSub(t *testing.T) {
	a := Position{1, 2}
	b := Position{3, 5}

	assert.Equal(t, Position{4, 7}, a.Add(b))
	assert.Equal(t, Position{-2, -3}, a.Sub(b))
	assert.True(t, a.Add(b).Sub(b).Equal(a))
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "(10.00, 20.00)", Position{10, 20}.String())
	assert.Equal(t, "(-1.50, 0.25)", Position{-1.5, 0.25}.String())
}

func TestCourt_Contains(t *testing.T) {
	court := NewCourt(14, 7.5)

	tests := []struct {
		name  string
		pos   Position
		valid bool
	}{
		{"Centre", Position{0, 0}, true},
		{"InsideCorner", Position{-13.9, 7.4}, true},
		{"OnSideline", Position{14, 0}, false},
		{"OnBaseline", Position{0, -7.5}, false},
		{"OutsideX", Position{20, 1}, false},
		{"OutsideY", Position{1, -9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, court.Contains(tt.pos))
		})
	}
}
