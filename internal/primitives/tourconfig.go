// TourConfig represents the top-level configuration of a tour: its ID, an
// optional explicit lesson order and a skip list. An empty Lessons list means
// the catalog order. Validation ensures ID presence and no duplicate or blank
// lesson IDs; Resolve additionally checks every ID against a catalog.
package primitives

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultTourID names the built-in tour.
const DefaultTourID = "language-basics"

var (
	ErrDuplicateLesson = errors.New("duplicate lesson")
	ErrUnknownLesson   = errors.New("unknown lesson")
)

// TourConfig defines which lessons run and in which order.
type TourConfig struct {
	Version string   `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	ID      string   `json:"id" yaml:"id" toml:"id"`
	Lessons []string `json:"lessons,omitempty" yaml:"lessons,omitempty" toml:"lessons,omitempty"`
	Skip    []string `json:"skip,omitempty" yaml:"skip,omitempty" toml:"skip,omitempty"`
}

// DefaultTourConfig returns the configuration of the built-in tour.
func DefaultTourConfig() TourConfig {
	return TourConfig{ID: DefaultTourID}
}

// Validate validates the configuration on its own:
// - Non-empty ID
// - No blank lesson IDs in Lessons or Skip
// - No lesson listed twice in Lessons
func (c *TourConfig) Validate() error {
	if c.ID == "" {
		return errors.New("tour ID is required")
	}
	seen := make(map[string]bool, len(c.Lessons))
	for i, id := range c.Lessons {
		if id == "" {
			return fmt.Errorf("lesson %d: blank ID", i)
		}
		if seen[id] {
			return fmt.Errorf("lesson %q: %w", id, ErrDuplicateLesson)
		}
		seen[id] = true
	}
	for i, id := range c.Skip {
		if id == "" {
			return fmt.Errorf("skip %d: blank ID", i)
		}
	}
	return nil
}

// Resolve returns the lessons to run, in order, drawn from catalog.
// Every ID named in Lessons or Skip must exist in the catalog.
func (c *TourConfig) Resolve(catalog []Lesson) ([]Lesson, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	byID := make(map[string]Lesson, len(catalog))
	for _, l := range catalog {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("catalog lesson %q: %w", l.ID, err)
		}
		if _, dup := byID[l.ID]; dup {
			return nil, fmt.Errorf("catalog lesson %q: %w", l.ID, ErrDuplicateLesson)
		}
		byID[l.ID] = l
	}

	for _, id := range c.Skip {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("skip %q: %w", id, ErrUnknownLesson)
		}
	}

	var ordered []Lesson
	if len(c.Lessons) == 0 {
		ordered = slices.Clone(catalog)
	} else {
		ordered = make([]Lesson, 0, len(c.Lessons))
		for _, id := range c.Lessons {
			l, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("lesson %q: %w", id, ErrUnknownLesson)
			}
			ordered = append(ordered, l)
		}
	}

	return slices.DeleteFunc(ordered, func(l Lesson) bool {
		return slices.Contains(c.Skip, l.ID)
	}), nil
}

// LoadTourConfig decodes a YAML tour configuration. Unknown fields are
// rejected. An empty document yields the default configuration, and a
// missing ID falls back to DefaultTourID.
func LoadTourConfig(r io.Reader) (TourConfig, error) {
	cfg := DefaultTourConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return TourConfig{}, fmt.Errorf("yaml decode: %w", err)
	}
	return finishTourConfig(cfg)
}

// LoadTourConfigTOML is LoadTourConfig for TOML documents.
func LoadTourConfigTOML(r io.Reader) (TourConfig, error) {
	cfg := DefaultTourConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return TourConfig{}, fmt.Errorf("toml decode: %w", err)
	}
	return finishTourConfig(cfg)
}

func finishTourConfig(cfg TourConfig) (TourConfig, error) {
	if cfg.ID == "" {
		cfg.ID = DefaultTourID
	}
	if err := cfg.Validate(); err != nil {
		return TourConfig{}, err
	}
	return cfg, nil
}

// LoadTourConfigFile reads and decodes the file at path. Files ending in
// .toml are decoded as TOML, anything else as YAML.
func LoadTourConfigFile(path string) (TourConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return TourConfig{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return LoadTourConfigTOML(f)
	}
	return LoadTourConfig(f)
}
