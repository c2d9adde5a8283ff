package extensibility

import (
	"context"
	"testing"

	"github.com/comalice/langtour/internal/core"
	"github.com/comalice/langtour/internal/lessons"
	"github.com/comalice/langtour/internal/primitives"
)

func TestIDFilter(t *testing.T) {
	noop := func(*primitives.Output) {}
	tests := []struct {
		name   string
		filter *IDFilter
		id     string
		want   bool
	}{
		{"empty allows", NewIDFilter(), "hello", true},
		{"listed", NewIDFilter("hello", "loops"), "loops", true},
		{"not listed", NewIDFilter("hello"), "loops", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Allow(primitives.NewLesson(tt.id, "", noop)); got != tt.want {
				t.Errorf("Allow(%q) = %v want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestTagFilter(t *testing.T) {
	lesson := primitives.NewLesson("closures", "Closures", func(*primitives.Output) {}).WithTags("functions", "closures")
	tests := []struct {
		name   string
		filter *TagFilter
		want   bool
	}{
		{"empty allows", NewTagFilter(), true},
		{"matching tag", NewTagFilter("loops", "closures"), true},
		{"no match", NewTagFilter("loops"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Allow(lesson); got != tt.want {
				t.Errorf("Allow = %v want %v", got, tt.want)
			}
		})
	}
}

func TestTourWithCustomExtensibility(t *testing.T) {
	filter := AllFilter{NewTagFilter("closures"), NewIDFilter("closures", "partials", "loops")}
	tour := core.NewTour(primitives.DefaultTourConfig(), lessons.Catalog(),
		core.WithRunner(NewLoggingRunner(&DefaultRunner{}, nil)),
		core.WithFilter(filter),
	)

	got, err := tour.Lessons()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "closures" || got[1].ID != "partials" {
		t.Fatalf("unexpected lessons %v", got)
	}

	transcript, err := tour.Run(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		`printed from closure: "hello world!"`,
		"what a lovely closure!",
		"add four to seven = 11",
		"add three to five = 8",
	}
	lines := transcript.Lines()
	if len(lines) != len(want) {
		t.Fatalf("got %v want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}
}
