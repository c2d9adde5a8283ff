// Tests for DefaultVisualizer DOT export and tag clustering.
package production

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/comalice/langtour/internal/core"
	"github.com/comalice/langtour/internal/lessons"
	"github.com/comalice/langtour/internal/primitives"
)

func TestDefaultVisualizer_ExportDOT_Chain(t *testing.T) {
	v := &DefaultVisualizer{}
	noop := func(*primitives.Output) {}
	ls := []primitives.Lesson{
		primitives.NewLesson("hello", "Basic printing", noop).WithTags("printing"),
		primitives.NewLesson("loops", "Loop and break", noop).WithTags("control-flow"),
		primitives.NewLesson("misc", "Untagged", noop),
	}
	dot := v.ExportDOT("simple", ls, map[string]bool{"hello": true})

	if !strings.Contains(dot, `digraph "simple" {`) {
		t.Error("Missing DOT header")
	}
	if !strings.Contains(dot, `"hello" [label="Basic printing" style=filled fillcolor=lightgreen];`) {
		t.Errorf("Missing completed lesson highlight:\n%s", dot)
	}
	if !strings.Contains(dot, `"loops" [label="Loop and break"];`) {
		t.Errorf("Missing pending lesson node:\n%s", dot)
	}
	if !strings.Contains(dot, `"hello" -> "loops" [label="1"];`) || !strings.Contains(dot, `"loops" -> "misc" [label="2"];`) {
		t.Errorf("Missing sequence edges:\n%s", dot)
	}
	if !strings.Contains(dot, `subgraph "cluster_printing"`) || strings.Contains(dot, `"cluster_"`) {
		t.Errorf("unexpected clusters:\n%s", dot)
	}
}

func TestDefaultVisualizer_ExportDOT_Empty(t *testing.T) {
	dot := (&DefaultVisualizer{}).ExportDOT("empty", nil, nil)
	if strings.Contains(dot, "->") {
		t.Errorf("empty tour must have no edges:\n%s", dot)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("DOT not terminated")
	}
}

func TestDefaultVisualizer_ExportJSON(t *testing.T) {
	cfg := primitives.TourConfig{ID: "t", Skip: []string{"hello"}}
	data, err := (&DefaultVisualizer{}).ExportJSON(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var back primitives.TourConfig
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.ID != "t" || len(back.Skip) != 1 {
		t.Errorf("got %+v", back)
	}
}

func TestDefaultVisualizer_Integration_TourProgress(t *testing.T) {
	tour := core.NewTour(primitives.DefaultTourConfig(), lessons.Catalog(), core.WithVisualizer(&DefaultVisualizer{}))
	before := tour.Visualize()
	if strings.Contains(before, "lightgreen") {
		t.Error("nothing should be complete before running")
	}
	if _, err := tour.Run(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	after := tour.Visualize()
	if got := strings.Count(after, "fillcolor=lightgreen"); got != len(lessons.Catalog()) {
		t.Errorf("got %d completed nodes want %d", got, len(lessons.Catalog()))
	}
}
