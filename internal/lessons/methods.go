package lessons

import "github.com/comalice/langtour/internal/primitives"

type Dude struct {
	Name string
}

// SayHello only reads the receiver, so it takes it by value.
func (d Dude) SayHello(out *primitives.Output) {
	out.Linef("Hi, my name is %s", primitives.Debug(d.Name))
}

func methods(out *primitives.Output) {
	tonyDude := Dude{
		Name: "Tony",
	}
	tonyDude.SayHello(out)
}
