// Package geom provides the 2D point/vector primitive used by the truss
// generators and the structural model.
package geom

import (
	"fmt"
	"math"
)

// Vertex is a point (or displacement) in the 2D structural plane.
// It is a value type: all arithmetic returns a new Vertex and never
// mutates the receiver.
type Vertex struct {
	X float64
	Y float64
}

// NewVertex creates a vertex from two coordinates.
func NewVertex(x, y float64) Vertex {
	return Vertex{X: x, Y: y}
}

// FromPair creates a vertex from a raw coordinate pair.
func FromPair(p [2]float64) Vertex {
	return Vertex{X: p[0], Y: p[1]}
}

// Add returns the component-wise sum of v and other.
func (v Vertex) Add(other Vertex) Vertex {
	return Vertex{X: v.X + other.X, Y: v.Y + other.Y}
}

// AddXY returns v displaced by the raw pair (x, y).
func (v Vertex) AddXY(x, y float64) Vertex {
	return Vertex{X: v.X + x, Y: v.Y + y}
}

// Sub returns the component-wise difference of v and other.
func (v Vertex) Sub(other Vertex) Vertex {
	return Vertex{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vertex) Scale(s float64) Vertex {
	return Vertex{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided by the scalar s.
func (v Vertex) Div(s float64) Vertex {
	return Vertex{X: v.X / s, Y: v.Y / s}
}

// Length returns the Euclidean magnitude of v.
func (v Vertex) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Unit returns the unit vector pointing in the direction of v.
// A zero-length vertex has no direction and yields an error.
func (v Vertex) Unit() (Vertex, error) {
	m := v.Length()
	if m == 0 {
		return Vertex{}, fmt.Errorf("cannot normalize zero-length vertex %s", v)
	}
	return v.Div(m), nil
}

// DisplacePolar returns v moved by radius along the direction alpha
// (radians, counter-clockwise from the positive x axis).
func (v Vertex) DisplacePolar(alpha, radius float64) Vertex {
	return Vertex{
		X: v.X + math.Cos(alpha)*radius,
		Y: v.Y + math.Sin(alpha)*radius,
	}
}

// DisplacePolarInvY is DisplacePolar for an inverted y axis (y grows
// downward), as used by screen-space renderers.
func (v Vertex) DisplacePolarInvY(alpha, radius float64) Vertex {
	return Vertex{
		X: v.X + math.Cos(alpha)*radius,
		Y: v.Y - math.Sin(alpha)*radius,
	}
}

// Equals reports whether both components match exactly. Callers that
// need tolerance use Colocated instead.
func (v Vertex) Equals(other Vertex) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vertex) String() string {
	return fmt.Sprintf("Vertex(%g, %g)", v.X, v.Y)
}

// Colocated reports whether a and b lie within tol of each other on
// both axes.
func Colocated(a, b Vertex, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

// Range returns n+1 evenly spaced vertices from v1 to v2 inclusive.
func Range(v1, v2 Vertex, n int) []Vertex {
	dv := v2.Sub(v1)
	out := make([]Vertex, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, v1.Add(dv.Scale(float64(i)/float64(n))))
	}
	return out
}
