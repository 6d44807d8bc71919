package geometry

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// SegmentSet is an unordered set of line segments.
type SegmentSet map[LineSegment]struct{}

// reportDigits is the precision intersection points are rounded to before
// they key the report. Two segment pairs meeting at the same spot compute
// the point with slightly different float noise; the rounding collapses them
// onto one report entry.
const reportDigits = 5

func roundTo(x float64, digits int) float64 {
	shift := math.Pow(10, float64(digits))
	return math.Round(x*shift) / shift
}

func roundPoint(p Point) Point {
	return Point{roundTo(p.X, reportDigits), roundTo(p.Y, reportDigits)}
}

// Intersections maps each intersection point to the set of input segments
// containing it. Points iterate in first-insertion order.
type Intersections struct {
	order    []Point
	segments map[Point]SegmentSet
	events   []AnimationEvent
}

func NewIntersections() *Intersections {
	return &Intersections{segments: make(map[Point]SegmentSet)}
}

// Add records that every segment in segs contains the given point. The point
// is rounded before keying the report.
func (x *Intersections) Add(p Point, segs ...LineSegment) {
	rounded := roundPoint(p)
	containing, ok := x.segments[rounded]
	if !ok {
		containing = make(SegmentSet)
		x.segments[rounded] = containing
		x.order = append(x.order, rounded)
		x.events = append(x.events, AppendEvent{Point: rounded})
	}
	for _, s := range segs {
		containing[s] = struct{}{}
	}
}

// Animate records a visited point that turned out not to be an intersection,
// for visualisation only.
func (x *Intersections) Animate(p Point) {
	x.events = append(x.events, AppendEvent{Point: p}, PopEvent{})
}

func (x *Intersections) Len() int { return len(x.order) }

// Points returns the intersection points in first-insertion order.
func (x *Intersections) Points() []Point { return x.order }

// At returns the set of segments containing the point (which is rounded the
// same way Add rounds).
func (x *Intersections) At(p Point) SegmentSet {
	return x.segments[roundPoint(p)]
}

// Events returns the trace of reported and visited points.
func (x *Intersections) Events() []AnimationEvent { return x.events }

func (x *Intersections) String() string {
	var lines []string
	for _, p := range x.order {
		set := x.segments[p]
		segs := make([]string, 0, len(set))
		for s := range set {
			segs = append(segs, s.String())
		}
		sort.Strings(segs)
		lines = append(lines, fmt.Sprintf("%v: {%s}", p, strings.Join(segs, ", ")))
	}
	return strings.Join(lines, "\n")
}
