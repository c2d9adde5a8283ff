// Lesson represents one self-contained demonstration in the tour: an ID, a
// human title, optional tags used for filtering, and the body that prints to
// an Output.
package primitives

import (
	"errors"
	"slices"
)

// Body is the code of a lesson. It writes its demonstration to out and
// cannot fail; write errors are tracked by the Output itself.
type Body func(out *Output)

// Lesson defines a single demonstration.
type Lesson struct {
	ID    string   `json:"id" yaml:"id"`
	Title string   `json:"title" yaml:"title"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Body  Body     `json:"-" yaml:"-"`
}

// NewLesson creates a new Lesson with ID, title and body.
func NewLesson(id, title string, body Body) Lesson {
	return Lesson{
		ID:    id,
		Title: title,
		Body:  body,
	}
}

// WithTags returns a copy of the lesson carrying the given tags.
func (l Lesson) WithTags(tags ...string) Lesson {
	l.Tags = append([]string(nil), tags...)
	return l
}

// HasTag reports whether the lesson carries tag.
func (l Lesson) HasTag(tag string) bool {
	return slices.Contains(l.Tags, tag)
}

// Validate checks that the lesson can be run.
func (l Lesson) Validate() error {
	if l.ID == "" {
		return errors.New("lesson ID is required")
	}
	if l.Body == nil {
		return errors.New("lesson body is required")
	}
	return nil
}
