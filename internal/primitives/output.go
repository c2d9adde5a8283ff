// Output is the console sink handed to every lesson body.
// Each line is written to the underlying writer immediately and recorded so
// the runtime can assemble a transcript once the lesson returns.
package primitives

import (
	"fmt"
	"io"
)

// Output writes newline-terminated lines to an io.Writer and records them.
// The first write error is kept; subsequent writes are skipped so a lesson
// body never has to check errors itself.
// Not safe for concurrent use: one Output belongs to one running lesson.
type Output struct {
	w      io.Writer
	lesson string
	lines  []Line
	err    error
}

// NewOutput creates an Output for the given lesson. A nil writer discards
// output but still records lines.
func NewOutput(w io.Writer, lesson string) *Output {
	if w == nil {
		w = io.Discard
	}
	return &Output{w: w, lesson: lesson}
}

// Line writes text followed by a newline.
func (o *Output) Line(text string) {
	if o.err != nil {
		return
	}
	if _, err := io.WriteString(o.w, text+"\n"); err != nil {
		o.err = fmt.Errorf("lesson %q: write: %w", o.lesson, err)
		return
	}
	o.lines = append(o.lines, NewLine(o.lesson, text))
}

// Linef formats according to format and writes the result as one line.
func (o *Output) Linef(format string, args ...any) {
	o.Line(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the recorded lines.
func (o *Output) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Texts returns the recorded line texts in order.
func (o *Output) Texts() []string {
	texts := make([]string, len(o.lines))
	for i, l := range o.lines {
		texts[i] = l.Text
	}
	return texts
}

// Err returns the first write error, if any.
func (o *Output) Err() error {
	return o.err
}
