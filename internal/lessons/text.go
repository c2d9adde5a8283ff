package lessons

import (
	"strings"

	"github.com/comalice/langtour/internal/primitives"
)

// A TextView is a read-only view of text owned by someone else. It wraps
// either a []byte or a string without copying. A view is only valid while
// the call it was passed to runs; anything that keeps the text afterwards
// must take an owned copy with Owned.
type TextView struct {
	// If data is non-nil, data is used, else str is used.
	data []byte
	str  string
}

// ViewString views a string.
func ViewString(s string) TextView {
	return TextView{str: s}
}

// ViewBytes views a caller-owned byte buffer. The caller may reuse the
// buffer once the receiving call returns.
func ViewBytes(b []byte) TextView {
	return TextView{data: b}
}

// Len returns the view's length in bytes.
func (v TextView) Len() int {
	if v.data != nil {
		return len(v.data)
	}
	return len(v.str)
}

// Owned returns an independent copy of the text that outlives the view.
func (v TextView) Owned() string {
	if v.data != nil {
		return string(v.data)
	}
	return strings.Clone(v.str)
}

func (v TextView) String() string {
	if v.data != nil {
		return string(v.data)
	}
	return v.str
}

func (v TextView) DebugString() string {
	return primitives.Debug(v.String())
}

// Person keeps its name after construction, so it owns it.
type Person struct {
	Name string
	Age  int8
}

// NewPerson copies name out of the view.
func NewPerson(name TextView, age int8) Person {
	return Person{
		Name: name.Owned(),
		Age:  age,
	}
}

func ownedStrings(out *primitives.Output) {
	me := NewPerson(ViewString("Tony"), 24)
	out.Linef("I am: %s", primitives.Debug(me))
}

// printMe only reads its input during the call; a view is enough.
func printMe(out *primitives.Output, input TextView) {
	out.Linef("got a string: %s", primitives.Debug(input))
}

func stringViews(out *primitives.Output) {
	myStringSlice := ViewString("beep boop")
	printMe(out, myStringSlice)
}
