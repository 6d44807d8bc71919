package geometry

import "math/rand"

// Random instance generation for demos and tests. Point clouds are normally
// distributed around the canvas center and clipped to a margin; segment
// endpoints are uniform. Generated instances never contain duplicates, which
// keeps them valid algorithm input.

func RandomPoints(r *rand.Rand, n int, maxX, maxY float64) []Point {
	seen := make(map[Point]struct{}, n)
	points := make([]Point, 0, n)
	for len(points) < n {
		p := Point{
			X: clip(r.NormFloat64()*0.15*maxX+0.5*maxX, 0.05*maxX, 0.95*maxX),
			Y: clip(r.NormFloat64()*0.15*maxY+0.5*maxY, 0.05*maxY, 0.95*maxY),
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}
	return points
}

func RandomSegments(r *rand.Rand, n int, maxX, maxY float64) []LineSegment {
	uniform := func(max float64) float64 {
		return 0.05*max + r.Float64()*0.9*max
	}
	seen := make(map[LineSegment]struct{}, n)
	segments := make([]LineSegment, 0, n)
	for len(segments) < n {
		p := Point{uniform(maxX), uniform(maxY)}
		q := Point{uniform(maxX), uniform(maxY)}
		if p == q {
			continue
		}
		s := NewLineSegment(p, q)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		segments = append(segments, s)
	}
	return segments
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
