package geometry

// Animation events are an advisory side channel for visualisation layers:
// results record the sequence of mutations that produced them, so an
// external tool can replay the construction step by step. They never affect
// what an algorithm returns.

type AnimationEvent interface {
	// Replay the event against a point sequence.
	ExecuteOn(points *[]Point)
}

type AppendEvent struct {
	Point Point
}

func (e AppendEvent) ExecuteOn(points *[]Point) {
	*points = append(*points, e.Point)
}

type PopEvent struct{}

func (PopEvent) ExecuteOn(points *[]Point) {
	*points = (*points)[:len(*points)-1]
}

type SetEvent struct {
	Index int
	Point Point
}

func (e SetEvent) ExecuteOn(points *[]Point) {
	(*points)[e.Index] = e.Point
}

type DeleteEvent struct {
	Index int
}

func (e DeleteEvent) ExecuteOn(points *[]Point) {
	*points = append((*points)[:e.Index], (*points)[e.Index+1:]...)
}

type ClearEvent struct{}

func (ClearEvent) ExecuteOn(points *[]Point) {
	*points = (*points)[:0]
}
