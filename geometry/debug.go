package geometry

import (
	"github.com/logrusorgru/aurora"

	"github.com/avhofmann/planar/dbg"
)

// DbgName gives the segment a stable readable name for debug output,
// colored by class: horizontal segments are the usual suspects in sweep
// ordering bugs, so they stand out in red.
func (s LineSegment) DbgName() string {
	name := dbg.Name(s)
	if s.IsHorizontal() {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}
