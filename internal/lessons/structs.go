package lessons

import "github.com/comalice/langtour/internal/primitives"

type Point struct {
	X float64
	Y float64
}

// Rectangle is spanned by two opposite corners.
type Rectangle struct {
	P1 Point
	P2 Point
}

func (r Rectangle) Width() float64 {
	return abs(r.P2.X - r.P1.X)
}

func (r Rectangle) Height() float64 {
	return abs(r.P2.Y - r.P1.Y)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// TupleStruct is a struct whose fields are addressed by position.
type TupleStruct struct {
	F0 int32
	F1 bool
}

func (t TupleStruct) DebugString() string {
	return primitives.DebugTuple("TupleStruct", t.F0, t.F1)
}

func NewRectangle() Rectangle {
	return Rectangle{
		P1: Point{X: 4.0, Y: 5.0},
		P2: Point{X: 7.0, Y: 8.0},
	}
}

func structs(out *primitives.Output) {
	// Built and dropped: the rectangle only shows nested construction.
	_ = NewRectangle()

	myTupleStruct := TupleStruct{92, false}
	out.Linef("my_tuple_struct = %s", primitives.Debug(myTupleStruct))
}
