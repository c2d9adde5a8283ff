// Package core provides the runtime of the tour.
// Options for configuring Tour instances.
package core

import "log"

// WithRunner configures the Tour with a custom Runner.
func WithRunner(r Runner) Option {
	return func(t *Tour) {
		t.runner = r
	}
}

// WithFilter narrows the resolved lessons to those the filter allows.
func WithFilter(f Filter) Option {
	return func(t *Tour) {
		t.filter = f
	}
}

// WithPersister configures the Tour with a Persister for transcripts.
func WithPersister(p Persister) Option {
	return func(t *Tour) {
		t.persister = p
	}
}

// WithPublisher configures the Tour with an EventPublisher.
func WithPublisher(pb EventPublisher) Option {
	return func(t *Tour) {
		t.publisher = pb
	}
}

// WithVisualizer configures the Tour with a Visualizer.
func WithVisualizer(v Visualizer) Option {
	return func(t *Tour) {
		t.visualizer = v
	}
}

// WithLogger sets the logger for non-fatal observer failures.
// A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(t *Tour) {
		if l != nil {
			t.logger = l
		}
	}
}
