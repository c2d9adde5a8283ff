package lessons

import "github.com/comalice/langtour/internal/primitives"

// NewArray returns the tour's fixed-size array. Arrays are values: the
// returned array is a copy owned by the caller.
func NewArray() [3]int32 {
	return [3]int32{56, 12, 7}
}

// Borrow returns a read-only view of arr[lo:hi]. The view shares arr's
// memory and must not be kept past the owner's scope or written through.
func Borrow(arr *[3]int32, lo, hi int) []int32 {
	return arr[lo:hi:hi]
}

func arrays(out *primitives.Output) {
	myArray := NewArray()
	out.Linef("my array = %s", primitives.Debug(myArray))
}

func slicing(out *primitives.Output) {
	myArray := NewArray()
	mySlice := Borrow(&myArray, 0, 2)
	out.Linef("my slice = %s", primitives.Debug(mySlice))
}
