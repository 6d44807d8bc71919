package geometry

import "github.com/pkg/errors"

// Threading errors up through every predicate and recursive search would add
// a ton of noise to the algorithms. Instead, internal failures panic with a
// GeometryError, and the public API in the root package recovers to convert
// to an error.

type GeometryError error

// Sentinel causes so callers can tell input mistakes apart from violated
// internal preconditions (errors.Is works through the wrapping).
var (
	// ErrInvalidInput reports bad caller input: duplicate points or
	// segments, zero-length segments, an orientation query against a
	// degenerate edge.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPrecondition reports a stateful comparator invoked before its
	// required context was set.
	ErrPrecondition = errors.New("precondition violated")
)

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError(errors.Errorf(format, args...)))
}

func invalidf(format string, args ...interface{}) {
	panic(GeometryError(errors.Wrapf(ErrInvalidInput, format, args...)))
}

func preconditionf(format string, args ...interface{}) {
	panic(GeometryError(errors.Wrapf(ErrPrecondition, format, args...)))
}

// RecoverError converts a recovered panic into the error it carries. Foreign
// panics are re-raised.
func RecoverError(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}

func validatePoints(points []Point) {
	seen := make(map[Point]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			invalidf("duplicate point %v", p)
		}
		seen[p] = struct{}{}
	}
}

func validateSegments(segments []LineSegment) {
	seen := make(map[LineSegment]struct{}, len(segments))
	for _, s := range segments {
		if _, ok := seen[s]; ok {
			invalidf("duplicate line segment %v", s)
		}
		seen[s] = struct{}{}
	}
}
