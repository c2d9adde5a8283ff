package lessons

import (
	"fmt"

	"github.com/comalice/langtour/internal/primitives"
)

// Animal is a closed set of variants: Bird, Fish and Mammal. The unexported
// marker method keeps other packages from adding variants.
type Animal interface {
	isAnimal()
}

type Bird struct{}

type Fish struct {
	Weight int32
}

type Mammal struct {
	IsCow  bool
	Weight float64
}

func (Bird) isAnimal()   {}
func (Fish) isAnimal()   {}
func (Mammal) isAnimal() {}

const (
	BirdMessage   = "This is a bird"
	FishMessage   = "This is a fish"
	MammalMessage = "This is a mammal"
)

// DescribeAnimal classifies an animal by its variant. Every variant has a
// case; reaching the default means the set was extended without updating
// this switch, which is a programming error.
func DescribeAnimal(animal Animal) string {
	switch animal.(type) {
	case Bird, *Bird:
		return BirdMessage
	case Fish, *Fish:
		return FishMessage
	case Mammal, *Mammal:
		return MammalMessage
	default:
		panic(fmt.Sprintf("lessons: unhandled animal variant %T", animal))
	}
}

func enums(out *primitives.Output) {
	myDog := Mammal{
		IsCow:  false,
		Weight: 120.63,
	}
	out.Line(DescribeAnimal(myDog))
}
