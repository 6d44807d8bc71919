package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularIndex(t *testing.T) {
	assert.Equal(t, 0, CircularIndex(0, 4))
	assert.Equal(t, 3, CircularIndex(-1, 4))
	assert.Equal(t, 2, CircularIndex(-2, 4))
	assert.Equal(t, 1, CircularIndex(5, 4))
	assert.Equal(t, 0, CircularIndex(8, 4))
}

func TestPolygonAt(t *testing.T) {
	pg := NewPolygon(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1})
	assert.Equal(t, Point{0, 0}, pg.At(0))
	assert.Equal(t, Point{0, 1}, pg.At(-1))
	assert.Equal(t, Point{1, 1}, pg.At(-2))
	assert.Equal(t, Point{1, 0}, pg.At(5))
}

func TestPolygonMutation(t *testing.T) {
	pg := NewPolygon(Point{0, 0}, Point{1, 0}, Point{2, 0})
	pg.Append(Point{3, 0})
	assert.Equal(t, 4, pg.Len())

	popped := pg.Pop()
	assert.Equal(t, Point{3, 0}, popped)

	pg.Delete(-2)
	assert.Equal(t, []Point{{0, 0}, {2, 0}}, pg.Points())
}

func TestPolygonPointSet(t *testing.T) {
	pg := NewPolygon(Point{0, 0}, Point{1, 0})
	set := pg.PointSet()
	assert.Len(t, set, 2)
	assert.Contains(t, set, Point{1, 0})
}

func TestPolygonEmptyPanics(t *testing.T) {
	pg := NewPolygon()
	assert.Panics(t, func() { pg.Pop() })
	assert.Panics(t, func() { pg.Delete(0) })
}

// Replaying the mutation trace against an empty point list must rebuild the
// polygon exactly, transient animation points included and then removed.
func TestPolygonEventReplay(t *testing.T) {
	pg := NewPolygon(Point{0, 0}, Point{5, 0}, Point{5, 5})
	pg.Animate(Point{9, 9})
	pg.Append(Point{0, 5})
	pg.Delete(-2)
	pg.Pop()

	var replay []Point
	for _, event := range pg.Events() {
		event.ExecuteOn(&replay)
	}
	require.Equal(t, pg.Points(), replay)
}

func TestPolygonString(t *testing.T) {
	pg := NewPolygon(Point{1, 2}, Point{3, 4})
	assert.Equal(t, "[(1, 2), (3, 4)]", pg.String())
}
