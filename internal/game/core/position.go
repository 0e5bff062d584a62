package core

import (
	"fmt"
	"math"
)

// Position represents a point on the court in metres
type Position struct {
	X, Y float64
}

// NewPosition creates a new position with the given x and y values
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// DistanceTo calculates the Euclidean distance to another position
func (p Position) DistanceTo(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns a new position offset by another
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference between this position and another
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Equal checks if two positions are equal
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Court is a rectangle centred on the origin. A position is on the court when
// it lies strictly inside both half extents.
type Court struct {
	HalfWidth  float64
	HalfLength float64
}

// NewCourt creates a court from its half extents
func NewCourt(halfWidth, halfLength float64) Court {
	return Court{HalfWidth: halfWidth, HalfLength: halfLength}
}

// Contains checks if the position is within the court bounds
func (c Court) Contains(p Position) bool {
	return math.Abs(p.X) < c.HalfWidth && math.Abs(p.Y) < c.HalfLength
}
