package geometry

// NaiveHull computes the convex hull in Θ(n³) by validating every directed
// edge against every other point. An edge p->q is a hull edge iff no other
// point lies strictly right of it or collinearly outside it; only LEFT and
// BETWEEN keep it valid. Collinear interior points are excluded by the
// BETWEEN test failing for the shorter of two collinear edge candidates;
// the longer edge survives and its interior points are BETWEEN.
//
// This is the most float-fragile of the hull algorithms: near-collinear
// inputs can fail every candidate edge for some tail and leave the edge walk
// unable to close, which surfaces as an error rather than a wrong polygon.
func NaiveHull(points []Point) *Polygon {
	validatePoints(points)
	if len(points) <= 2 {
		return NewPolygon(points...)
	}

	// A tail has exactly one valid head (collinear ties resolve to the
	// farthest head because nearer heads leave BEHIND_TARGET witnesses).
	edges := make(map[Point]Point, len(points))
	for _, p := range points {
		for _, q := range points {
			if p == q {
				continue
			}
			valid := true
			for _, r := range points {
				if r == p || r == q {
					continue
				}
				switch r.Orientation(p, q) {
				case Left, Between:
				default:
					valid = false
				}
				if !valid {
					break
				}
			}
			if valid {
				edges[p] = q
			}
		}
	}

	if len(edges) == 0 {
		fatalf("naive hull found no valid edges for %d points", len(points))
	}

	// Walk the edge map from the smallest tail until the cycle closes.
	var start Point
	first := true
	for tail := range edges {
		if first || lexLess(tail, start) {
			start = tail
			first = false
		}
	}

	hull := NewPolygon(start)
	for current := edges[start]; current != start; {
		hull.Append(current)
		next, ok := edges[current]
		if !ok || hull.Len() > len(points) {
			fatalf("naive hull edge walk did not close (inconsistent orientation predicate?)")
		}
		current = next
	}
	return hull
}
