package extensibility

import (
	"github.com/comalice/langtour/internal/core"
	"github.com/comalice/langtour/internal/primitives"
)

// IDFilter allows only the listed lesson IDs. An empty filter allows
// everything.
type IDFilter struct {
	ids map[string]bool
}

// NewIDFilter creates an IDFilter for ids.
func NewIDFilter(ids ...string) *IDFilter {
	f := &IDFilter{ids: make(map[string]bool, len(ids))}
	for _, id := range ids {
		f.ids[id] = true
	}
	return f
}

// Allow reports whether lesson is on the list.
func (f *IDFilter) Allow(lesson primitives.Lesson) bool {
	if len(f.ids) == 0 {
		return true
	}
	return f.ids[lesson.ID]
}

// TagFilter allows lessons carrying at least one of its tags. An empty filter
// allows everything.
type TagFilter struct {
	tags []string
}

// NewTagFilter creates a TagFilter for tags.
func NewTagFilter(tags ...string) *TagFilter {
	return &TagFilter{tags: tags}
}

// Allow reports whether lesson carries any of the filter's tags.
func (f *TagFilter) Allow(lesson primitives.Lesson) bool {
	if len(f.tags) == 0 {
		return true
	}
	for _, tag := range f.tags {
		if lesson.HasTag(tag) {
			return true
		}
	}
	return false
}

// AllFilter allows a lesson only if every wrapped filter does.
type AllFilter []core.Filter

func (f AllFilter) Allow(lesson primitives.Lesson) bool {
	for _, inner := range f {
		if !inner.Allow(lesson) {
			return false
		}
	}
	return true
}
