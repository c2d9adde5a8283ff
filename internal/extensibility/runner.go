package extensibility

import (
	"fmt"
	"log"
	"time"

	"github.com/comalice/langtour/internal/core"
	"github.com/comalice/langtour/internal/primitives"
)

// DefaultRunner provides the default implementation of Runner.
type DefaultRunner struct{}

// Run executes the lesson body against out.
func (r *DefaultRunner) Run(out *primitives.Output, lesson primitives.Lesson) error {
	if lesson.Body == nil {
		return fmt.Errorf("lesson %q has no body", lesson.ID)
	}
	lesson.Body(out)
	return out.Err()
}

// LoggingRunner wraps a Runner and adds logging around execution.
type LoggingRunner struct {
	inner  core.Runner
	logger *log.Logger
}

// NewLoggingRunner creates a new LoggingRunner wrapping the given inner
// runner. A nil logger logs through the standard logger.
func NewLoggingRunner(inner core.Runner, logger *log.Logger) *LoggingRunner {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingRunner{inner: inner, logger: logger}
}

// Run logs before and after delegating to the inner runner.
func (r *LoggingRunner) Run(out *primitives.Output, lesson primitives.Lesson) error {
	r.logger.Printf("LOG: Running lesson %q (%s)", lesson.ID, lesson.Title)
	start := time.Now()
	err := r.inner.Run(out, lesson)
	r.logger.Printf("LOG: Lesson %q printed %d lines in %v: %v", lesson.ID, len(out.Lines()), time.Since(start), err)
	return err
}
