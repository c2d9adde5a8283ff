package lessons

import (
	"github.com/comalice/langtour/internal/primitives"
)

func hello(out *primitives.Output) {
	out.Line("Hello, world!")
}

func formatting(out *primitives.Output) {
	name, age := "Tony", 24
	out.Linef("Hi, my name is: %s, I am %d years old", name, age)
}

// Scalars is the set of primitive values the tour starts from.
type Scalars struct {
	Boolean bool
	Decimal float32
	Integer int32
	Char    primitives.Char
}

// NewScalars returns the tour's fixed primitive values.
func NewScalars() Scalars {
	return Scalars{
		Boolean: false,
		Decimal: 3.14,
		Integer: 42,
		Char:    'T',
	}
}

// Tuple groups the scalars positionally.
func (s Scalars) Tuple() primitives.Tuple {
	return primitives.Tuple{s.Boolean, s.Decimal, s.Integer, s.Char}
}

func mutability(out *primitives.Output) {
	var myMutableInteger int32 = 5
	myMutableInteger = 6
	out.Linef("here's the new integer: %s", primitives.Debug(myMutableInteger))
}

func tuples(out *primitives.Output) {
	myTuple := NewScalars().Tuple()
	out.Linef("boolean: %s, decimal: %s, int: %s, char: %s",
		primitives.Debug(myTuple[0]),
		primitives.Debug(myTuple[1]),
		primitives.Debug(myTuple[2]),
		primitives.Debug(myTuple[3]))
	out.Linef("my tuple = %s", primitives.Debug(myTuple))
}
