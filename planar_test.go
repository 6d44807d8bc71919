package planar

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avhofmann/planar/geometry"
)

func TestHullAPI(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5}}
	corners := map[Point]struct{}{
		{X: 0, Y: 0}: {}, {X: 10, Y: 0}: {}, {X: 10, Y: 10}: {}, {X: 0, Y: 10}: {},
	}

	for name, hullOf := range map[string]func([]Point) (*Polygon, error){
		"naive":         NaiveHull,
		"graham scan":   GrahamScan,
		"gift wrapping": GiftWrapping,
		"chan's":        ChansHull,
	} {
		t.Run(name, func(t *testing.T) {
			hull, err := hullOf(points)
			require.NoError(t, err)
			assert.Equal(t, corners, hull.PointSet())
		})
	}
}

func TestHullAPIErrors(t *testing.T) {
	duplicated := []Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}}
	for name, hullOf := range map[string]func([]Point) (*Polygon, error){
		"naive":         NaiveHull,
		"graham scan":   GrahamScan,
		"gift wrapping": GiftWrapping,
		"chan's":        ChansHull,
	} {
		t.Run(name, func(t *testing.T) {
			hull, err := hullOf(duplicated)
			assert.Nil(t, hull)
			require.Error(t, err)
			assert.True(t, errors.Is(err, geometry.ErrInvalidInput))
		})
	}
}

func TestIntersectionsAPI(t *testing.T) {
	s1, err := NewSegment(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	require.NoError(t, err)
	s2, err := NewSegment(Point{X: 0, Y: 10}, Point{X: 10, Y: 0})
	require.NoError(t, err)

	for name, intersect := range map[string]func([]LineSegment) (*Intersections, error){
		"brute force": BruteForceIntersections,
		"plane sweep": PlaneSweepIntersections,
	} {
		t.Run(name, func(t *testing.T) {
			result, err := intersect([]LineSegment{s1, s2})
			require.NoError(t, err)
			require.Equal(t, []Point{{X: 5, Y: 5}}, result.Points())
		})
	}
}

func TestIntersectionsAPIErrors(t *testing.T) {
	s, err := NewSegment(Point{X: 0, Y: 0}, Point{X: 1, Y: 1})
	require.NoError(t, err)

	for name, intersect := range map[string]func([]LineSegment) (*Intersections, error){
		"brute force": BruteForceIntersections,
		"plane sweep": PlaneSweepIntersections,
	} {
		t.Run(name, func(t *testing.T) {
			result, err := intersect([]LineSegment{s, s})
			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.Is(err, geometry.ErrInvalidInput))
		})
	}
}

func TestNewSegment(t *testing.T) {
	s, err := NewSegment(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	require.NoError(t, err)
	assert.Equal(t, Point{X: 10, Y: 10}, s.Upper)

	_, err = NewSegment(Point{X: 3, Y: 3}, Point{X: 3, Y: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, geometry.ErrInvalidInput))
}
