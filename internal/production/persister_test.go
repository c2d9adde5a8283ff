// Tests for transcript persisters round-trip and integration with Tour.
package production

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/comalice/langtour/internal/core"
	"github.com/comalice/langtour/internal/lessons"
	"github.com/comalice/langtour/internal/primitives"
	"github.com/comalice/langtour/testutil"
)

func sampleTranscript() core.Transcript {
	return core.Transcript{
		TourID:  "test-tour",
		Version: "v1",
		Lessons: []core.LessonTranscript{
			{ID: "hello", Title: "Basic printing", Lines: []string{"Hello, world!"}},
			{ID: "destructuring", Title: "Destructuring", Lines: []string{"a = 1, b = 2,  y = 3 "}},
		},
	}
}

func TestPersisters_RoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			p, err := NewPersister(format, t.TempDir())
			if err != nil {
				t.Fatalf("NewPersister failed: %v", err)
			}
			want := sampleTranscript()
			if err := p.Save(context.Background(), want); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			got, err := p.Load(context.Background(), "test-tour")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("got %+v want %+v", got, want)
			}
		})
	}
}

func TestPersisters_LoadNonExistent(t *testing.T) {
	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			p, err := NewPersister(format, t.TempDir())
			if err != nil {
				t.Fatal(err)
			}
			_, err = p.Load(context.Background(), "nonexistent")
			if !errors.Is(err, os.ErrNotExist) {
				t.Errorf("Expected os.ErrNotExist wrapped error, got %v", err)
			}
		})
	}
}

func TestNewPersister_UnknownFormat(t *testing.T) {
	if _, err := NewPersister("xml", t.TempDir()); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestYAMLPersister_FileLayout(t *testing.T) {
	dir := t.TempDir()
	p, err := NewYAMLPersister(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Save(context.Background(), sampleTranscript()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "test-tour.yaml")); err != nil {
		t.Errorf("expected test-tour.yaml: %v", err)
	}
}

func TestJSONPersister_Integration_TourTranscript(t *testing.T) {
	dir := t.TempDir()
	p, err := NewJSONPersister(dir)
	if err != nil {
		t.Fatal(err)
	}

	tour := core.NewTour(primitives.DefaultTourConfig(), lessons.Catalog(), core.WithPersister(p))
	if _, err := tour.Run(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	loaded, err := p.Load(context.Background(), primitives.DefaultTourID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Text() != testutil.Golden {
		t.Errorf("stored transcript differs: %s", testutil.DiffLines(loaded.Lines(), testutil.GoldenLines()))
	}
}
