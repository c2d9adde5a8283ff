// Package core provides the runtime of the tour: ordered, sequential
// execution of lessons with pluggable runners, filters and observers.

package core

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/comalice/langtour/internal/primitives"
)

// Pluggable component interfaces.

type Runner interface {
	Run(out *primitives.Output, lesson primitives.Lesson) error
}

type Filter interface {
	Allow(lesson primitives.Lesson) bool
}

type Persister interface {
	Save(ctx context.Context, transcript Transcript) error
	Load(ctx context.Context, tourID string) (Transcript, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event LessonEvent) error
	Close() error
}

type Visualizer interface {
	ExportDOT(tourID string, lessons []primitives.Lesson, done map[string]bool) string
	ExportJSON(config primitives.TourConfig) ([]byte, error)
}

// Transcript is the serializable record of a completed run.
type Transcript struct {
	TourID  string             `json:"tourID" yaml:"tourID" toml:"tourID"`
	Version string             `json:"version" yaml:"version" toml:"version"`
	Lessons []LessonTranscript `json:"lessons" yaml:"lessons" toml:"lessons"`
}

type LessonTranscript struct {
	ID    string   `json:"id" yaml:"id" toml:"id"`
	Title string   `json:"title" yaml:"title" toml:"title"`
	Lines []string `json:"lines" yaml:"lines" toml:"lines"`
}

// Lines returns every printed line in running order.
func (t Transcript) Lines() []string {
	var lines []string
	for _, l := range t.Lessons {
		lines = append(lines, l.Lines...)
	}
	return lines
}

// Text returns the transcript exactly as it was printed.
func (t Transcript) Text() string {
	var b strings.Builder
	for _, line := range t.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// LessonEvent is published after each lesson completes. RunID is shared by
// every event of one Run call.
type LessonEvent struct {
	RunID     string    `json:"runID" yaml:"runID"`
	TourID    string    `json:"tourID" yaml:"tourID"`
	LessonID  string    `json:"lessonID" yaml:"lessonID"`
	Index     int       `json:"index" yaml:"index"`
	Lines     []string  `json:"lines" yaml:"lines"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Option applies configuration to Tour via functional options pattern.
type Option func(*Tour)

// Tour runs a fixed, ordered sequence of lessons, each exactly once.
// Run is sequential; the accessors are safe to call from other goroutines
// while a run is in progress.
type Tour struct {
	config  primitives.TourConfig
	catalog []primitives.Lesson
	mu      sync.RWMutex
	lessons []primitives.Lesson // resolved on first use
	done    map[string]bool
	// Pluggable components (nil = defaults)
	runner     Runner
	filter     Filter
	persister  Persister
	publisher  EventPublisher
	visualizer Visualizer
	logger     *log.Logger
}

// NewTour creates a Tour over catalog configured by config.
func NewTour(config primitives.TourConfig, catalog []primitives.Lesson, opts ...Option) *Tour {
	t := &Tour{
		config:  config,
		catalog: catalog,
		done:    make(map[string]bool),
		logger:  log.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Config returns the tour's configuration.
func (t *Tour) Config() primitives.TourConfig {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.config
}

// Lessons returns the lessons a run executes, in order: the configuration
// resolved against the catalog, then narrowed by the filter.
func (t *Tour) Lessons() ([]primitives.Lesson, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.resolveLocked(); err != nil {
		return nil, err
	}
	return append([]primitives.Lesson(nil), t.lessons...), nil
}

func (t *Tour) resolveLocked() error {
	if t.lessons != nil {
		return nil
	}
	resolved, err := t.config.Resolve(t.catalog)
	if err != nil {
		return fmt.Errorf("tour %q: %w", t.config.ID, err)
	}
	lessons := make([]primitives.Lesson, 0, len(resolved))
	for _, l := range resolved {
		if t.filter == nil || t.filter.Allow(l) {
			lessons = append(lessons, l)
		}
	}
	t.lessons = lessons
	return nil
}

// Run executes every lesson once, in order, writing to w. It stops at the
// first write failure or when ctx is done, returning what was recorded so
// far. After a complete run the transcript is handed to the persister.
func (t *Tour) Run(ctx context.Context, w io.Writer) (Transcript, error) {
	lessons, err := t.Lessons()
	if err != nil {
		return Transcript{}, err
	}

	runID := uuid.NewString()
	transcript := Transcript{
		TourID:  t.config.ID,
		Version: primitives.ComputeVersion(&t.config),
		Lessons: make([]LessonTranscript, 0, len(lessons)),
	}

	for i, lesson := range lessons {
		if err := ctx.Err(); err != nil {
			return transcript, err
		}

		out := primitives.NewOutput(w, lesson.ID)
		if err := t.runLesson(out, lesson); err != nil {
			return transcript, err
		}

		lines := out.Texts()
		transcript.Lessons = append(transcript.Lessons, LessonTranscript{
			ID:    lesson.ID,
			Title: lesson.Title,
			Lines: lines,
		})

		t.mu.Lock()
		t.done[lesson.ID] = true
		t.mu.Unlock()

		if t.publisher != nil {
			event := LessonEvent{
				RunID:     runID,
				TourID:    t.config.ID,
				LessonID:  lesson.ID,
				Index:     i,
				Lines:     lines,
				Timestamp: time.Now(),
			}
			if err := t.publisher.Publish(ctx, event); err != nil {
				t.logger.Printf("publish lesson %q: %v", lesson.ID, err)
			}
		}
	}

	if t.persister != nil {
		if err := t.persister.Save(ctx, transcript); err != nil {
			return transcript, fmt.Errorf("save transcript: %w", err)
		}
	}

	return transcript, nil
}

func (t *Tour) runLesson(out *primitives.Output, lesson primitives.Lesson) error {
	if t.runner != nil {
		if err := t.runner.Run(out, lesson); err != nil {
			return err
		}
		return out.Err()
	}
	lesson.Body(out)
	return out.Err()
}

// Done reports whether the lesson with id has completed in this tour.
func (t *Tour) Done(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.done[id]
}

// Visualize returns the Graphviz DOT rendering of the lesson sequence,
// highlighting completed lessons.
func (t *Tour) Visualize() string {
	if t.visualizer == nil {
		return "ERROR: No visualizer configured. Use WithVisualizer(&production.DefaultVisualizer{})"
	}
	lessons, err := t.Lessons()
	if err != nil {
		return "ERROR: " + err.Error()
	}
	t.mu.RLock()
	done := make(map[string]bool, len(t.done))
	for id, ok := range t.done {
		done[id] = ok
	}
	t.mu.RUnlock()
	return t.visualizer.ExportDOT(t.config.ID, lessons, done)
}
