package geometry

// BruteForceIntersections intersects every unordered pair of segments in
// Θ(n²), which is worst case optimal since Θ(n²) pairs can intersect. A collinear
// overlap collapses to its two extreme points, each reported against both
// segments.
func BruteForceIntersections(segments []LineSegment) *Intersections {
	validateSegments(segments)
	result := NewIntersections()
	for i, s1 := range segments {
		for _, s2 := range segments[i+1:] {
			switch inter := s1.Intersection(s2); inter.Kind {
			case PointIntersection:
				result.Add(inter.Point, s1, s2)
			case OverlapIntersection:
				result.Add(inter.Overlap.Upper, s1, s2)
				result.Add(inter.Overlap.Lower, s1, s2)
			}
		}
	}
	return result
}
