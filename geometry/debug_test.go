package geometry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avhofmann/planar/dbg"
)

func TestDbgNameStableAndColored(t *testing.T) {
	flat := NewLineSegment(Point{0, 10}, Point{30, 10})
	steep := NewLineSegment(Point{0, 0}, Point{10, 30})

	// The colored name wraps the memoized plain name, so terminal output and
	// drawn labels refer to segments by the same word.
	require.Contains(t, flat.DbgName(), dbg.Name(flat))
	require.Contains(t, steep.DbgName(), dbg.Name(steep))
	assert.Equal(t, flat.DbgName(), flat.DbgName())

	// Horizontal segments come out red, everything else green.
	assert.True(t, strings.HasPrefix(flat.DbgName(), "\x1b[31m"))
	assert.True(t, strings.HasPrefix(steep.DbgName(), "\x1b[32m"))
}
