// Package production provides production integrations: transcript
// persistence, lesson event publishing, visualization.

package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/comalice/langtour/internal/core"
)

// JSONPersister is a file-based transcript persister using JSON serialization.
type JSONPersister struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONPersister{dir: dir}, nil
}

func (p *JSONPersister) Save(ctx context.Context, transcript core.Transcript) error {
	data, err := json.MarshalIndent(transcript, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	fn := filepath.Join(p.dir, transcript.TourID+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (p *JSONPersister) Load(ctx context.Context, tourID string) (core.Transcript, error) {
	data, err := readTranscript(filepath.Join(p.dir, tourID+".json"), tourID)
	if err != nil {
		return core.Transcript{}, err
	}

	var transcript core.Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return core.Transcript{}, fmt.Errorf("json unmarshal: %w", err)
	}
	transcript.TourID = tourID

	return transcript, nil
}

// YAMLPersister is a file-based transcript persister using YAML serialization.
type YAMLPersister struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLPersister{dir: dir}, nil
}

func (p *YAMLPersister) Save(ctx context.Context, transcript core.Transcript) error {
	data, err := yaml.Marshal(transcript)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	fn := filepath.Join(p.dir, transcript.TourID+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (p *YAMLPersister) Load(ctx context.Context, tourID string) (core.Transcript, error) {
	data, err := readTranscript(filepath.Join(p.dir, tourID+".yaml"), tourID)
	if err != nil {
		return core.Transcript{}, err
	}

	var transcript core.Transcript
	if err := yaml.Unmarshal(data, &transcript); err != nil {
		return core.Transcript{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	transcript.TourID = tourID

	return transcript, nil
}

// TOMLPersister is a file-based transcript persister using TOML serialization.
type TOMLPersister struct {
	dir string
}

// NewTOMLPersister creates a TOMLPersister, ensuring the directory exists.
func NewTOMLPersister(dir string) (*TOMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &TOMLPersister{dir: dir}, nil
}

func (p *TOMLPersister) Save(ctx context.Context, transcript core.Transcript) error {
	data, err := toml.Marshal(transcript)
	if err != nil {
		return fmt.Errorf("toml marshal: %w", err)
	}

	fn := filepath.Join(p.dir, transcript.TourID+".toml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (p *TOMLPersister) Load(ctx context.Context, tourID string) (core.Transcript, error) {
	data, err := readTranscript(filepath.Join(p.dir, tourID+".toml"), tourID)
	if err != nil {
		return core.Transcript{}, err
	}

	var transcript core.Transcript
	if err := toml.Unmarshal(data, &transcript); err != nil {
		return core.Transcript{}, fmt.Errorf("toml unmarshal: %w", err)
	}
	transcript.TourID = tourID

	return transcript, nil
}

// NewPersister returns the persister for format ("json", "yaml" or "toml")
// rooted at dir.
func NewPersister(format, dir string) (core.Persister, error) {
	switch format {
	case "json":
		return NewJSONPersister(dir)
	case "yaml":
		return NewYAMLPersister(dir)
	case "toml":
		return NewTOMLPersister(dir)
	default:
		return nil, fmt.Errorf("unknown transcript format %q", format)
	}
}

func readTranscript(fn, tourID string) ([]byte, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("tour %q: %w", tourID, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", fn, err)
	}
	return data, nil
}
