package lessons

import "github.com/comalice/langtour/internal/primitives"

const GenericMessage = "this function takes different types for args"

// GenericTest accepts an argument of any type and ignores it.
func GenericTest[T any](out *primitives.Output, _ T) {
	out.Line(GenericMessage)
}

// CallFunction calls fn with input. F is constrained to functions taking a
// single int32, so both named and literal functions are accepted.
func CallFunction[F ~func(int32)](fn F, input int32) {
	fn(input)
}

func generics(out *primitives.Output) {
	GenericTest(out, 235)
	GenericTest(out, "look, a string!")

	CallFunction(func(myInput int32) {
		out.Linef("I have been called: %s", primitives.Debug(myInput))
	}, 74)
}
