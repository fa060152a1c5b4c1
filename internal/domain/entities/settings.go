package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultQueryTimeout bounds each repository query when nothing else is configured.
const DefaultQueryTimeout = 10 * time.Second

// Settings is the optional configuration file. Keys missing from the file
// keep their defaults.
type Settings struct {
	Timeout    time.Duration `yaml:"timeout"`
	Heuristics Heuristics    `yaml:"heuristics"`
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Timeout:    DefaultQueryTimeout,
		Heuristics: DefaultHeuristics(),
	}
}

// NewSettings reads the YAML file at path on top of the defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}

	if validateErr := settings.validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, validateErr)
	}

	logger.Debugf("Loaded settings from %s", path)
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	locations := []string{".", ".config"}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".gitassist.yaml",
		".gitassist.yml",
		"gitassist.yaml",
		"gitassist.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func (s *Settings) validate() error {
	if s.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}

	h := s.Heuristics
	for i, category := range h.Categories {
		if category.Prefix == "" {
			return fmt.Errorf("heuristics.categories[%d].prefix is required", i)
		}
		if len(category.Keywords) == 0 {
			return fmt.Errorf("heuristics.categories[%d].keywords must have at least one entry", i)
		}
	}
	if h.MaxSlugWords < 1 {
		return errors.New("heuristics.max_slug_words must be at least 1")
	}
	if h.MaxSlugLength < 1 {
		return errors.New("heuristics.max_slug_length must be at least 1")
	}
	if h.MinSubjectLength < 0 || h.MaxFilesChanged < 0 || h.MaxLinesChanged < 0 {
		return errors.New("heuristics thresholds must not be negative")
	}

	return nil
}
