// Line provides the immutable record of one line of lesson output.
//
// Lines are value types. Once recorded by an Output they must not be mutated;
// Output.Lines hands out a copy so callers cannot reach the backing slice.
package primitives

type Line struct {
	Lesson string `json:"lesson" yaml:"lesson"`
	Text   string `json:"text" yaml:"text"`
}

// NewLine creates a Line attributed to the given lesson.
func NewLine(lesson, text string) Line {
	return Line{
		Lesson: lesson,
		Text:   text,
	}
}
