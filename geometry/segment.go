package geometry

import (
	"fmt"
	"math"
)

// LineSegment is an immutable segment normalized into an upper and a lower
// endpoint: the upper endpoint is the one the sweep line meets first
// (greater y, ties broken by smaller x, so a horizontal segment's upper
// endpoint is its left one). Because of the normalization, two segments with
// swapped endpoints compare equal as values.
type LineSegment struct {
	Upper, Lower Point
}

// NewLineSegment builds a normalized segment. Equal endpoints are an input
// error.
func NewLineSegment(p, q Point) LineSegment {
	if p == q {
		invalidf("a line segment needs two different endpoints, got %v twice", p)
	}
	if p.Y > q.Y || (p.Y == q.Y && p.X < q.X) {
		return LineSegment{Upper: p, Lower: q}
	}
	return LineSegment{Upper: q, Lower: p}
}

func (s LineSegment) String() string {
	return fmt.Sprintf("%v--%v", s.Upper, s.Lower)
}

func (s LineSegment) IsHorizontal() bool {
	return Equal(s.Upper.Y, s.Lower.Y)
}

// IntersectionKind tags the result of intersecting two segments.
type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	PointIntersection
	OverlapIntersection
)

// Intersection is the outcome of intersecting two segments: nothing, a
// single point, or a sub-segment when the segments are collinear and
// overlap.
type Intersection struct {
	Kind    IntersectionKind
	Point   Point       // set for PointIntersection
	Overlap LineSegment // set for OverlapIntersection
}

// Intersection computes where s and other meet, via the parametric line
// equations. Shared endpoints and endpoint-touches count as single point
// intersections. The result is symmetric in its arguments up to float noise
// in the computed coordinates.
func (s LineSegment) Intersection(other LineSegment) Intersection {
	selfDirection := s.Upper.Sub(s.Lower)
	otherDirection := other.Upper.Sub(other.Lower)
	directionsCross := selfDirection.Cross(otherDirection)
	offset := other.Lower.Sub(s.Lower)

	if math.Abs(directionsCross) > Epsilon {
		t := offset.Cross(otherDirection) / directionsCross
		u := offset.Cross(selfDirection) / directionsCross
		if -Epsilon <= t && t <= 1.0+Epsilon && -Epsilon <= u && u <= 1.0+Epsilon {
			return Intersection{
				Kind:  PointIntersection,
				Point: s.Lower.Add(selfDirection.Scale(t)),
			}
		}
	} else if math.Abs(offset.Cross(selfDirection)) <= Epsilon {
		// Collinear: project the other segment's parameter range onto ours
		// and intersect with [0, 1].
		selfDirectionDot := selfDirection.Dot(selfDirection)
		t0 := offset.Dot(selfDirection) / selfDirectionDot
		t1 := t0 + otherDirection.Dot(selfDirection)/selfDirectionDot
		tMin := math.Max(0.0, math.Min(t0, t1))
		tMax := math.Min(1.0, math.Max(t0, t1))
		if tMin == tMax {
			return Intersection{
				Kind:  PointIntersection,
				Point: s.Lower.Add(selfDirection.Scale(tMin)),
			}
		} else if tMin < tMax {
			return Intersection{
				Kind: OverlapIntersection,
				Overlap: NewLineSegment(
					s.Lower.Add(selfDirection.Scale(tMin)),
					s.Lower.Add(selfDirection.Scale(tMax)),
				),
			}
		}
	}

	return Intersection{Kind: NoIntersection}
}
