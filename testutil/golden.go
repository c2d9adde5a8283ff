// Package testutil provides the reference transcript of the language-basics
// tour and helpers shared by the package tests.
package testutil

import (
	"fmt"
	"strings"

	"github.com/comalice/langtour/internal/primitives"
)

// Golden is the exact console output of the default tour.
const Golden = `Hello, world!
Hi, my name is: Tony, I am 24 years old
here's the new integer: 6
boolean: false, decimal: 3.14, int: 42, char: 'T'
my tuple = (false, 3.14, 42, 'T')
my array = [56, 12, 7]
my slice = [56, 12]
my_tuple_struct = TupleStruct(92, false)
This is a mammal
I am: Person { name: "Tony", age: 24 }
got a string: "beep boop"
count = 0
count = 1
count = 2
count = 3
count = 4
count = 5
count = 6
count = 7
count = 8
count = 9
count = 10
Entered the outer loop
Entered the inner loop
Exited the outer loop
a = 1, b = 2,  y = 3 
Hi, my name is "Tony"
printed from closure: "hello world!"
what a lovely closure!
the color is: "blue"
this function takes different types for args
this function takes different types for args
I have been called: 74
add four to seven = 11
add three to five = 8
`

// GoldenLines returns Golden split into lines, without the trailing newline.
func GoldenLines() []string {
	return strings.Split(strings.TrimSuffix(Golden, "\n"), "\n")
}

// Capture runs body against a discarding Output and returns the lines it
// printed.
func Capture(body primitives.Body) []string {
	out := primitives.NewOutput(nil, "capture")
	body(out)
	return out.Texts()
}

// DiffLines describes the first difference between got and want, or returns
// "" when they are equal.
func DiffLines(got, want []string) string {
	for i := 0; i < len(got) && i < len(want); i++ {
		if got[i] != want[i] {
			return fmt.Sprintf("line %d: got %q want %q", i+1, got[i], want[i])
		}
	}
	if len(got) != len(want) {
		return fmt.Sprintf("got %d lines want %d", len(got), len(want))
	}
	return ""
}
