// Package geometry implements the core computational geometry of this
// module: planar primitives, four convex hull algorithms of differing
// asymptotic behavior, and two line segment intersection algorithms.
//
// All predicates are floating point. Epsilon absorbs most of the resulting
// noise, but inputs can be constructed where the orientation predicate
// answers inconsistently for nearly collinear points; the algorithms then
// produce incorrect output (naive hull) or surface an internal error (plane
// sweep) rather than silently masking it. Exact arithmetic is deliberately
// out of scope.
package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance of the orientation and intersection predicates.
// It is tuned for the standard coordinate range of roughly 0 to 400.
const Epsilon = 1e-9

// Equal is tolerance based float equality.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Orientation classifies a query point against a directed edge. The three
// collinear cases are split by where the point falls along the edge, because
// the hull algorithms treat "past the target" very differently from "between
// the endpoints".
type Orientation int

const (
	Left Orientation = iota
	Right
	Between
	BehindSource
	BehindTarget
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Between:
		return "BETWEEN"
	case BehindSource:
		return "BEHIND_SOURCE"
	case BehindTarget:
		return "BEHIND_TARGET"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Point is an immutable position in the plane. Points are plain comparable
// values; equality is exact coordinate equality, which is what lets them key
// maps. Only the plane sweep compares points with tolerance.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) Add(q Point) Point      { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point      { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(f float64) Point  { return Point{f * p.X, f * p.Y} }
func (p Point) Dot(q Point) float64    { return p.X*q.X + p.Y*q.Y }
func (p Point) Cross(q Point) float64  { return p.X*q.Y - q.X*p.Y }
func (p Point) Distance(q Point) float64 {
	return math.Sqrt((p.X-q.X)*(p.X-q.X) + (p.Y-q.Y)*(p.Y-q.Y))
}

// Near is tolerance based point equality, used only where the plane sweep
// matches computed intersection points against segment endpoints.
func (p Point) Near(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Orientation locates p relative to the directed edge source->target. Every
// algorithm in this package routes through this single predicate; the
// degeneracy handling all reduces to pattern matching its result.
func (p Point) Orientation(source, target Point) Orientation {
	if source == target {
		invalidf("orientation needs two different edge points, got %v twice", source)
	}
	direction := target.Sub(source)
	offset := p.Sub(source)
	cross := offset.Cross(direction)
	if math.Abs(cross) <= Epsilon {
		t := offset.Dot(direction) / direction.Dot(direction)
		switch {
		case t < 0.0:
			return BehindSource
		case t > 1.0:
			return BehindTarget
		default:
			return Between
		}
	}
	if cross < 0.0 {
		return Left
	}
	return Right
}

// lexLess orders points by (x, y). Graham Scan's sort and the hull starting
// point selection both depend on the secondary key; without it, point sets
// with shared x coordinates break the scan.
func lexLess(a, b Point) bool {
	return a.X < b.X || (a.X == b.X && a.Y < b.Y)
}

// A PointReference is a non-owning handle to a point stored in a polygon,
// identified by container and position rather than by value. Chan's hull
// uses these to tell which mini-hull a candidate came from and to step to
// its cyclic successor without searching. A reference must not outlive
// mutations of its container; mini-hulls are never mutated after
// construction, which keeps this safe.
type PointReference struct {
	container *Polygon
	position  int
}

func NewPointReference(container *Polygon, position int) PointReference {
	return PointReference{container: container, position: position}
}

func (r PointReference) Container() *Polygon { return r.container }
func (r PointReference) Position() int       { return r.position }
func (r PointReference) Point() Point        { return r.container.At(r.position) }
