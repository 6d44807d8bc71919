package geometry

import (
	"fmt"
	"strings"
)

// CircularIndex treats an array of length n as a circular buffer. Unlike the
// raw modulo operator it maps negative indices into range, so At(-1) is the
// last element.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Polygon is an ordered, mutable sequence of points, used for hull
// boundaries in consistent rotational order. The algorithm that builds one
// owns it exclusively; once returned, ownership passes to the caller.
type Polygon struct {
	points []Point
	events []AnimationEvent
}

func NewPolygon(points ...Point) *Polygon {
	pg := &Polygon{}
	for _, p := range points {
		pg.Append(p)
	}
	return pg
}

func (pg *Polygon) Len() int { return len(pg.points) }

// At returns the point at a circular index; negative indices count from the
// end, and out-of-range indices wrap.
func (pg *Polygon) At(i int) Point {
	return pg.points[CircularIndex(i, len(pg.points))]
}

// Points returns the boundary in order. The slice is shared with the
// polygon; callers that mutate it forfeit the trace.
func (pg *Polygon) Points() []Point { return pg.points }

// PointSet returns the vertices as a set, for order-insensitive comparison.
func (pg *Polygon) PointSet() map[Point]struct{} {
	set := make(map[Point]struct{}, len(pg.points))
	for _, p := range pg.points {
		set[p] = struct{}{}
	}
	return set
}

func (pg *Polygon) Append(p Point) {
	pg.points = append(pg.points, p)
	pg.events = append(pg.events, AppendEvent{Point: p})
}

func (pg *Polygon) Pop() Point {
	if len(pg.points) == 0 {
		fatalf("pop from empty polygon")
	}
	p := pg.points[len(pg.points)-1]
	pg.points = pg.points[:len(pg.points)-1]
	pg.events = append(pg.events, PopEvent{})
	return p
}

// Delete removes the point at a circular index.
func (pg *Polygon) Delete(i int) {
	if len(pg.points) == 0 {
		fatalf("delete from empty polygon")
	}
	i = CircularIndex(i, len(pg.points))
	pg.points = append(pg.points[:i], pg.points[i+1:]...)
	pg.events = append(pg.events, DeleteEvent{Index: i})
}

// Animate records a transient point in the trace without changing the
// polygon, e.g. a rejected candidate during gift wrapping.
func (pg *Polygon) Animate(p Point) {
	pg.events = append(pg.events, AppendEvent{Point: p}, PopEvent{})
}

// Events returns the mutation trace that built this polygon.
func (pg *Polygon) Events() []AnimationEvent { return pg.events }

func (pg *Polygon) String() string {
	parts := make([]string, len(pg.points))
	for i, p := range pg.points {
		parts[i] = p.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
