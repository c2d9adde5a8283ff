package lessons

import (
	"github.com/comalice/langtour/internal/primitives"
)

// CountStop is the value at which the counting loop breaks.
const CountStop uint64 = 10

// Count runs an unconditional loop that reports every count and breaks once
// the counter reaches stop. It reports 0 through stop inclusive.
func Count(stop uint64, report func(count uint64)) {
	var count uint64
	for {
		report(count)
		if count == stop {
			break
		}
		count++
	}
}

func loops(out *primitives.Output) {
	Count(CountStop, func(count uint64) {
		out.Linef("count = %d", count)
	})
}

const (
	EnteredOuter = "Entered the outer loop"
	EnteredInner = "Entered the inner loop"
	NeverReached = "This point will never be reached"
	ExitedOuter  = "Exited the outer loop"
)

// BreakOuter leaves an outer loop from inside an inner one on the first
// inner iteration. The line after the inner loop is never reported.
func BreakOuter(report func(msg string)) {
outer:
	for {
		report(EnteredOuter)
		for {
			report(EnteredInner)
			break outer
		}
		report(NeverReached)
	}
	report(ExitedOuter)
}

func labeledLoops(out *primitives.Output) {
	BreakOuter(out.Line)
}
