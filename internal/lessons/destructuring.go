package lessons

import "github.com/comalice/langtour/internal/primitives"

// Pair is a two-element tuple of unsigned integers.
type Pair struct {
	First, Second uint32
}

type Foo struct {
	X Pair
	Y uint32
}

// Unpack binds Foo's nested fields to separate values in one step.
func (f Foo) Unpack() (a, b, y uint32) {
	return f.X.First, f.X.Second, f.Y
}

func destructuring(out *primitives.Output) {
	bar := Foo{
		X: Pair{1, 2},
		Y: 3,
	}
	a, b, y := bar.Unpack()
	out.Linef("a = %d, b = %d,  y = %d ", a, b, y)
}
