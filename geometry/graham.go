package geometry

import "sort"

// GrahamScan computes the convex hull in O(n log n), dominated by the sort.
// Points are sorted by (x, y); one directed scan over the sorted order
// yields one chain of the hull, a second scan over the reversed order yields
// the other, and the chains are concatenated without duplicating the shared
// extreme points.
func GrahamScan(points []Point) *Polygon {
	validatePoints(points)
	if len(points) <= 2 {
		return NewPolygon(points...)
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return lexLess(sorted[i], sorted[j]) })

	hull := grahamChain(sorted)

	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	lower := grahamChain(sorted)

	// The reverse chain's first and last points duplicate the forward
	// chain's extremes; splice in only its interior.
	for i := 1; i < lower.Len()-1; i++ {
		hull.Append(lower.At(i))
	}
	return hull
}

// grahamChain runs the single-direction scan: grow the chain point by point,
// and while the newest point fails to make a LEFT turn with the two before
// it, drop the middle one. Collinear points fail the strict LEFT test too,
// so interior collinear points never survive.
func grahamChain(sorted []Point) *Polygon {
	chain := NewPolygon(sorted[0], sorted[1])
	for _, p := range sorted[2:] {
		chain.Append(p)
		for chain.Len() >= 3 && chain.At(-1).Orientation(chain.At(-3), chain.At(-2)) != Left {
			chain.Delete(-2)
		}
	}
	return chain
}
