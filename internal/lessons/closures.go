package lessons

import "github.com/comalice/langtour/internal/primitives"

func closures(out *primitives.Output) {
	myClosure := func(message string) {
		out.Linef("printed from closure: %s", primitives.Debug(message))
	}
	myClosure("hello world!")

	func() {
		out.Line("what a lovely closure!")
	}()
}

// CaptureByRef returns a closure that reads the caller's variable through a
// pointer. It observes later changes to *color and is only meaningful while
// the caller keeps the variable alive.
func CaptureByRef(color *string) func() string {
	return func() string {
		return *color
	}
}

// CaptureByValue copies color when the closure is built. The closure is
// independent of the caller's variable from then on.
func CaptureByValue(color string) func() string {
	return func() string {
		return color
	}
}

func capturing(out *primitives.Output) {
	color := "blue"
	printColor := func() {
		out.Linef("the color is: %s", primitives.Debug(CaptureByRef(&color)()))
	}
	printColor()
}

// AdditionPartial fixes the first operand of an addition. The captured value
// is copied in, so partials built from different operands never interfere.
func AdditionPartial(firstNumber int32) func(int32) int32 {
	return func(secondNumber int32) int32 {
		return firstNumber + secondNumber
	}
}

func partials(out *primitives.Output) {
	addToSeven := AdditionPartial(7)
	addToFive := AdditionPartial(5)

	out.Linef("add four to seven = %s", primitives.Debug(addToSeven(4)))
	out.Linef("add three to five = %s", primitives.Debug(addToFive(3)))
}
