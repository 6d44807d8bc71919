package geometry

// Chan's hull: O(n log h), output sensitive. The outer loop guesses the hull
// size by repeated squaring; each attempt partitions the input, computes a
// Graham Scan mini-hull per group, and gift-wraps across the mini-hulls
// using a logarithmic candidate search per mini-hull instead of scanning
// every point.

// ChansHull computes the convex hull in O(n log h). Repeated squaring makes
// m reach the true hull size within O(log log h) attempts while the wasted
// work of failed attempts stays geometrically bounded.
func ChansHull(points []Point) *Polygon {
	validatePoints(points)
	if len(points) <= 2 {
		return NewPolygon(points...)
	}

	n := len(points)
	for t := 0; ; t++ {
		m := n
		if exp := 1 << t; exp < 62 && (1<<exp) < n {
			m = 1 << exp
		}
		if hull := ParametricChansHull(points, m); hull != nil {
			return hull
		}
	}
}

// ParametricChansHull runs one attempt with hull-size guess m. It returns
// nil if the hull does not close within m wrapping steps, unless m already
// covers the whole input, in which case the possibly incomplete hull is
// returned as a last resort against malformed input. Exposed so the
// candidate search can be validated across forced m values.
func ParametricChansHull(points []Point, m int) *Polygon {
	if m < 1 {
		invalidf("chan's hull needs a positive group size, got %d", m)
	}
	n := len(points)

	miniHulls := make([]*Polygon, 0, (n+m-1)/m)
	for lo := 0; lo < n; lo += m {
		hi := lo + m
		if hi > n {
			hi = n
		}
		miniHulls = append(miniHulls, GrahamScan(points[lo:hi]))
	}

	start := maximalVertex(miniHulls)
	hull := NewPolygon(start.Point())
	current := start

	for i := 0; i < m; i++ {
		best := wrapAcrossMiniHulls(miniHulls, current, hull)
		if best.Point() == start.Point() {
			return hull
		}
		hull.Append(best.Point())
		current = best
	}

	if m >= n {
		return hull
	}
	return nil
}

// maximalVertex finds the (x, y)-maximal vertex over all mini-hulls; being
// extreme, it is a vertex of the full hull.
func maximalVertex(miniHulls []*Polygon) PointReference {
	var best PointReference
	haveBest := false
	for _, mh := range miniHulls {
		for i := 0; i < mh.Len(); i++ {
			if !haveBest || lexLess(best.Point(), mh.At(i)) {
				best = NewPointReference(mh, i)
				haveBest = true
			}
		}
	}
	if !haveBest {
		fatalf("chan's hull got no mini-hull vertices")
	}
	return best
}

// wrapAcrossMiniHulls runs one gift wrapping step where each mini-hull
// contributes only its few searched candidates instead of all its vertices.
func wrapAcrossMiniHulls(miniHulls []*Polygon, current PointReference, hull *Polygon) PointReference {
	cur := current.Point()
	var best PointReference
	haveBest := false
	for _, mh := range miniHulls {
		for _, cand := range miniHullCandidates(mh, current) {
			p := cand.Point()
			if p == cur {
				continue
			}
			if !haveBest {
				best = cand
				haveBest = true
				continue
			}
			switch p.Orientation(cur, best.Point()) {
			case Left, BehindTarget:
				hull.Animate(p)
				best = cand
			}
		}
	}
	if !haveBest {
		fatalf("chan's hull wrapping step found no candidate")
	}
	return best
}

// miniHullCandidates returns a constant-bounded set of candidate next hull
// points from one mini-hull, in O(log m).
//
// If the current vertex lies on this mini-hull, convexity makes its cyclic
// predecessor the only candidate: mini-hulls come out of the scan in
// counterclockwise order while the wrap proceeds clockwise, so the next hull
// vertex on the current vertex's own mini-hull is the one before it, not
// after. Otherwise the vertices' wrapping quality, read around the mini-hull
// from an arbitrary starting index, forms a rotated unimodal sequence (at
// most three monotone runs), and a modified binary search locates its peak.
// Collinear ties next to the midpoint are skipped by widening the midpoint's
// neighbors; ties against the range boundaries, or a widening that breaks the
// search invariant l <= mb < m < ma <= r, stop the search and the whole
// remaining range is returned and resolved by the caller's tournament.
func miniHullCandidates(mh *Polygon, current PointReference) []PointReference {
	n := mh.Len()
	if current.Container() == mh {
		return []PointReference{NewPointReference(mh, CircularIndex(current.Position()-1, n))}
	}

	cur := current.Point()

	// Angle-only comparison for navigating the search: +1 if vertex i is a
	// strictly better wrapping candidate than vertex j, -1 if strictly
	// worse, 0 when they are collinear with the current vertex. The full
	// comparison (farther collinear point wins) would hide which side of a
	// tie is better, so the search must not use it.
	angcmp := func(i, j int) int {
		pi, pj := mh.At(i), mh.At(j)
		if pi == pj {
			return 0
		}
		switch pi.Orientation(cur, pj) {
		case Left:
			return 1
		case Right:
			return -1
		}
		return 0
	}

	l, r := 0, n-1
	for r-l > 2 {
		m := (l + r) / 2
		mb, ma := m-1, m+1
		for mb >= l && angcmp(m, mb) == 0 {
			mb--
		}
		for ma <= r && angcmp(m, ma) == 0 {
			ma++
		}
		if mb < l || ma > r {
			break
		}

		if angcmp(m, mb) > 0 && angcmp(m, ma) > 0 {
			// The best direction. Everything between mb and ma ties with
			// m: return the whole run, because when the current vertex is
			// collinear with a mini-hull edge the run holds two vertices
			// and only the tournament's farther-wins rule can tell which
			// is the hull vertex.
			out := make([]PointReference, 0, ma-mb-1)
			for i := mb + 1; i < ma; i++ {
				out = append(out, NewPointReference(mh, i))
			}
			return out
		}

		// Decide which side holds the peak. When m beats the left
		// boundary, the local slope at m points at the peak; otherwise
		// the boundary comparison disambiguates which monotone run the
		// peak ended up in. A tie against either boundary means the
		// comparisons cannot place the peak, so fall through to the
		// range fallback.
		cml := angcmp(m, l)
		if cml > 0 {
			if angcmp(ma, m) > 0 {
				l = ma
			} else {
				r = mb
			}
		} else {
			crl := angcmp(r, l)
			if cml == 0 || crl == 0 {
				break
			}
			if crl > 0 {
				l = ma
			} else {
				r = mb
			}
		}
	}

	out := make([]PointReference, 0, r-l+1)
	for i := l; i <= r; i++ {
		out = append(out, NewPointReference(mh, i))
	}
	return out
}
