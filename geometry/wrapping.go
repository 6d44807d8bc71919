package geometry

// GiftWrapping computes the convex hull in O(n·h) by wrapping: starting from
// the (x, y)-maximal point, repeatedly pick the point every other point lies
// left of, as seen from the current vertex. The iteration cap guards against
// degenerate input spinning forever; if it trips, the hull built so far is
// returned.
func GiftWrapping(points []Point) *Polygon {
	validatePoints(points)
	if len(points) <= 2 {
		return NewPolygon(points...)
	}

	start := points[0]
	for _, p := range points[1:] {
		if lexLess(start, p) {
			start = p
		}
	}

	hull := NewPolygon(start)
	current := start
	for hull.Len() < len(points) {
		best := wrapStep(points, current, hull)
		if best == start {
			break
		}
		hull.Append(best)
		current = best
	}
	return hull
}

// wrapStep finds the point inducing the largest right-hand turn from the
// current vertex: a candidate replaces the best so far if it is LEFT of the
// edge to the best, or collinear and BEHIND_TARGET. The farther collinear
// point wins, which is what skips interior collinear points.
func wrapStep(points []Point, current Point, hull *Polygon) Point {
	var best Point
	haveBest := false
	for _, p := range points {
		if p == current {
			continue
		}
		if !haveBest {
			best = p
			haveBest = true
			continue
		}
		switch p.Orientation(current, best) {
		case Left, BehindTarget:
			hull.Animate(p)
			best = p
		}
	}
	if !haveBest {
		fatalf("gift wrapping found no candidate point")
	}
	return best
}
