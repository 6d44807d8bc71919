// Classic planar computational geometry for Go: convex hulls and line
// segment intersections.
//
// This package computes the convex hull of a point set with four algorithms
// of differing asymptotic and robustness characteristics (naive, Graham
// Scan, gift wrapping, Chan's), and all pairwise intersections of a segment
// set by brute force or plane sweep. All predicates are floating point;
// pathological near-degenerate input can defeat them, see the geometry
// package docs.
package planar

import "github.com/avhofmann/planar/geometry"

type Point = geometry.Point
type LineSegment = geometry.LineSegment
type Polygon = geometry.Polygon
type Intersections = geometry.Intersections
type Orientation = geometry.Orientation

// NewSegment builds a segment normalized into sweep order. Equal endpoints
// are an error.
func NewSegment(p, q Point) (segment LineSegment, err error) {
	defer func() {
		err = geometry.RecoverError(recover())
	}()
	return geometry.NewLineSegment(p, q), nil
}

// NaiveHull computes the convex hull in Θ(n³). Inputs of at most two points
// are returned verbatim as a degenerate hull; duplicate points are an error.
func NaiveHull(points []Point) (hull *Polygon, err error) {
	defer func() {
		if recoveredErr := geometry.RecoverError(recover()); recoveredErr != nil {
			hull, err = nil, recoveredErr
		}
	}()
	return geometry.NaiveHull(points), nil
}

// GrahamScan computes the convex hull in O(n log n).
func GrahamScan(points []Point) (hull *Polygon, err error) {
	defer func() {
		if recoveredErr := geometry.RecoverError(recover()); recoveredErr != nil {
			hull, err = nil, recoveredErr
		}
	}()
	return geometry.GrahamScan(points), nil
}

// GiftWrapping computes the convex hull in O(n·h) for hull size h.
func GiftWrapping(points []Point) (hull *Polygon, err error) {
	defer func() {
		if recoveredErr := geometry.RecoverError(recover()); recoveredErr != nil {
			hull, err = nil, recoveredErr
		}
	}()
	return geometry.GiftWrapping(points), nil
}

// ChansHull computes the convex hull in O(n log h).
func ChansHull(points []Point) (hull *Polygon, err error) {
	defer func() {
		if recoveredErr := geometry.RecoverError(recover()); recoveredErr != nil {
			hull, err = nil, recoveredErr
		}
	}()
	return geometry.ChansHull(points), nil
}

// BruteForceIntersections reports all pairwise segment intersections in
// Θ(n²). Duplicate segments are an error.
func BruteForceIntersections(segments []LineSegment) (result *Intersections, err error) {
	defer func() {
		if recoveredErr := geometry.RecoverError(recover()); recoveredErr != nil {
			result, err = nil, recoveredErr
		}
	}()
	return geometry.BruteForceIntersections(segments), nil
}

// PlaneSweepIntersections reports all pairwise segment intersections in
// O((n + i) log n). On inputs where float noise corrupts the sweep order it
// can fail with an error; BruteForceIntersections is the robust fallback.
func PlaneSweepIntersections(segments []LineSegment) (result *Intersections, err error) {
	defer func() {
		if recoveredErr := geometry.RecoverError(recover()); recoveredErr != nil {
			result, err = nil, recoveredErr
		}
	}()
	return geometry.PlaneSweepIntersections(segments), nil
}
