package geometry

import (
	"github.com/avhofmann/planar/tree"
)

// Plane sweep line segment intersection: a virtual horizontal line moves
// from the top of the plane downward, maintaining the segments it currently
// crosses in left-to-right order. Intersections can only happen between
// status neighbors, so only neighbor pairs are ever tested, giving
// O((n + i) log n) time for i intersection points.

// sweepOrder is the event queue order: topmost first, ties leftmost first.
// Comparisons are tolerance based so an intersection point recomputed from a
// different segment pair still lands on its existing queue entry.
func sweepOrder(key Point, probe any) int {
	q := probe.(Point)
	if Equal(key.Y, q.Y) {
		switch {
		case Equal(key.X, q.X):
			return 0
		case key.X < q.X:
			return -1
		}
		return 1
	}
	if key.Y > q.Y {
		return -1
	}
	return 1
}

// statusComparator orders the status structure's segments by horizontal
// position at the current event point. The order is not static: it must be
// re-established (by deleting and re-inserting the segments through the
// event) every time the event point advances. A point probe compares
// against a segment's position at the probe's own height, so all segments
// containing the probe compare equal to it.
type statusComparator struct {
	event *Point
}

func (c *statusComparator) setEvent(p Point) {
	c.event = &p
}

func (c *statusComparator) Compare(key LineSegment, probe any) int {
	switch p := probe.(type) {
	case Point:
		return compareWithTolerance(sweepX(key, p), p.X)
	case LineSegment:
		if c.event == nil {
			preconditionf("status structure compared segments before the first sweep event")
		}
		return c.compareSegments(key, p)
	}
	preconditionf("status structure probed with unsupported type %T", probe)
	return 0
}

func (c *statusComparator) compareSegments(a, b LineSegment) int {
	e := *c.event
	if cmp := compareWithTolerance(sweepX(a, e), sweepX(b, e)); cmp != 0 {
		return cmp
	}

	// Both pass through the event point; order by position immediately
	// below it, i.e. by how fast x grows per unit of descent. Horizontal
	// segments extend right of the event, so they order last.
	ra, aSlanted := descentRate(a)
	rb, bSlanted := descentRate(b)
	switch {
	case aSlanted && bSlanted:
		if cmp := compareWithTolerance(ra, rb); cmp != 0 {
			return cmp
		}
	case aSlanted:
		return -1
	case bSlanted:
		return 1
	}

	// Collinear (overlapping) segments: fall back to endpoint order so both
	// keep distinct slots in the status structure.
	if a.Upper != b.Upper {
		if lexLess(a.Upper, b.Upper) {
			return -1
		}
		return 1
	}
	if a.Lower != b.Lower {
		if lexLess(a.Lower, b.Lower) {
			return -1
		}
		return 1
	}
	return 0
}

func compareWithTolerance(a, b float64) int {
	if Equal(a, b) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// sweepX is the segment's horizontal position at the probe's height. For a
// horizontal segment every x along it qualifies, so the probe's x is clamped
// into the segment's range.
func sweepX(s LineSegment, p Point) float64 {
	if s.IsHorizontal() {
		switch {
		case p.X < s.Upper.X:
			return s.Upper.X
		case p.X > s.Lower.X:
			return s.Lower.X
		}
		return p.X
	}
	t := (s.Upper.Y - p.Y) / (s.Upper.Y - s.Lower.Y)
	return s.Upper.X + t*(s.Lower.X-s.Upper.X)
}

// descentRate is the x change per unit of downward travel along the
// segment; horizontal segments have none.
func descentRate(s LineSegment) (float64, bool) {
	dy := s.Upper.Y - s.Lower.Y
	if Equal(dy, 0) {
		return 0, false
	}
	return (s.Lower.X - s.Upper.X) / dy, true
}

type eventQueue = tree.Tree[Point, []LineSegment]

// PlaneSweepIntersections computes all pairwise segment intersections in
// O((n + i) log n). If float noise corrupts the status structure's order,
// neighbor queries return wrong segments; that surfaces as missing report
// entries or an internal error, and callers wanting certainty should fall
// back to BruteForceIntersections.
func PlaneSweepIntersections(segments []LineSegment) *Intersections {
	validateSegments(segments)
	result := NewIntersections()

	queue := tree.New[Point, []LineSegment](tree.ComparatorFunc[Point](sweepOrder))
	for _, s := range segments {
		s := s
		queue.Update(s.Upper, func(old []LineSegment, _ bool) []LineSegment {
			return append(old, s)
		})
		// Ensure the lower endpoint has an event even if nothing starts
		// there.
		queue.Update(s.Lower, func(old []LineSegment, _ bool) []LineSegment {
			return old
		})
	}

	comparator := &statusComparator{}
	status := tree.New[LineSegment, struct{}](comparator)

	for !queue.IsEmpty() {
		point, upperSegments, err := queue.PopMin()
		if err != nil {
			fatalf("event queue: %v", err)
		}
		handleEvent(point, upperSegments, queue, status, comparator, result)
	}
	return result
}

func handleEvent(p Point, upperSegments []LineSegment, queue *eventQueue,
	status *tree.Tree[LineSegment, struct{}], comparator *statusComparator, result *Intersections) {

	// Segments containing p as lower endpoint or interior point, found
	// under the order of the previous event.
	containing := status.Matching(p)
	for _, s := range containing {
		status.Delete(s)
	}

	// Advance the sweep line, then re-insert under the new order everything
	// that continues below p.
	comparator.setEvent(p)
	for _, s := range upperSegments {
		status.Insert(s, struct{}{})
	}
	for _, s := range containing {
		if s.Lower.Near(p) {
			continue
		}
		status.Insert(s, struct{}{})
	}

	// New intersections can only appear between segments that just became
	// neighbors: at the event's flanks if segments pass through it, or
	// between its direct neighbors if nothing remains at p.
	through := status.Matching(p)
	if len(through) == 0 {
		left, okLeft := status.SmallerNeighbour(p)
		right, okRight := status.GreaterNeighbour(p)
		if okLeft && okRight {
			findNewEvent(left, right, p, queue)
		}
	} else {
		if left, ok := status.SmallerNeighbour(p); ok {
			findNewEvent(left, through[0], p, queue)
		}
		if right, ok := status.GreaterNeighbour(p); ok {
			findNewEvent(through[len(through)-1], right, p, queue)
		}
	}

	// Report p against every segment containing it; fewer than two means p
	// is a plain endpoint event.
	all := make([]LineSegment, 0, len(upperSegments)+len(containing))
	seen := make(SegmentSet, len(upperSegments)+len(containing))
	for _, s := range append(append([]LineSegment{}, upperSegments...), containing...) {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		all = append(all, s)
	}
	if len(all) >= 2 {
		result.Add(p, all...)
	} else {
		result.Animate(p)
	}
}

// findNewEvent schedules the intersection of two fresh status neighbors if
// it lies strictly below the current event, or at its height but to the
// right. Anything else has already been swept. Collinear overlaps schedule
// both overlap endpoints.
func findNewEvent(left, right LineSegment, p Point, queue *eventQueue) {
	var candidates []Point
	switch inter := left.Intersection(right); inter.Kind {
	case PointIntersection:
		candidates = []Point{inter.Point}
	case OverlapIntersection:
		candidates = []Point{inter.Overlap.Upper, inter.Overlap.Lower}
	default:
		return
	}
	for _, q := range candidates {
		if sweepOrder(q, p) > 0 {
			// Idempotent: ensure the event exists, owning segments are
			// discovered from the status structure when it pops.
			queue.Update(q, func(old []LineSegment, _ bool) []LineSegment {
				return old
			})
		}
	}
}
