// Package seed loads exercise catalogs from YAML.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hyperpulsex/hyperpulse/internal/models"
)

//go:embed default.yaml
var defaultCatalog []byte

// Catalog is the document layout of a seed file.
type Catalog struct {
	Exercises []models.Exercise `yaml:"exercises"`
}

var (
	locations    = map[models.Location]bool{models.LocationHome: true, models.LocationGym: true, models.LocationOutdoor: true, models.LocationAny: true}
	intensities  = map[string]bool{"Low": true, "Medium": true, "High": true}
	difficulties = map[string]bool{"Beginner": true, "Intermediate": true, "Advanced": true}
)

// Default returns the catalog compiled into the binary.
func Default() ([]models.Exercise, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads and validates the catalog at path.
func LoadFile(path string) ([]models.Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog document. Unknown fields are rejected.
func Parse(data []byte) ([]models.Exercise, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate(c.Exercises); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c.Exercises, nil
}

func validate(exercises []models.Exercise) error {
	if len(exercises) == 0 {
		return errors.New("exercises list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(exercises))
	for i, ex := range exercises {
		switch {
		case ex.Title == "":
			return fmt.Errorf("exercise %d: title is required", i)
		case ex.Subtitle == "":
			return fmt.Errorf("exercise %q: subtitle is required", ex.Title)
		case seen[ex.Title]:
			return fmt.Errorf("exercise %q: duplicate title", ex.Title)
		case ex.Location != "" && !locations[ex.Location]:
			return fmt.Errorf("exercise %q: unknown location %q", ex.Title, ex.Location)
		case ex.Intensity != "" && !intensities[ex.Intensity]:
			return fmt.Errorf("exercise %q: unknown intensity %q", ex.Title, ex.Intensity)
		case ex.Difficulty != "" && !difficulties[ex.Difficulty]:
			return fmt.Errorf("exercise %q: unknown difficulty %q", ex.Title, ex.Difficulty)
		}
		seen[ex.Title] = true
	}
	return nil
}
