package controllers

import (
	"bytes"
	"io"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
	"github.com/rios0rios0/gitassist/internal/infrastructure/reports"
)

// invocation gathers what every action reads from the global flags.
type invocation struct {
	settings *entities.Settings
	renderer reports.Renderer
	repoDir  string
}

// newInvocation reads the global flags, loads the settings and resolves the renderer.
func newInvocation(cmd *cobra.Command, renderers *reports.RendererRegistry) (*invocation, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = reports.FormatHuman
	}
	renderer, err := renderers.Get(format)
	if err != nil {
		return nil, err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	repoDir, _ := cmd.Flags().GetString("repo")
	if repoDir == "" {
		repoDir = "."
	}

	return &invocation{settings: settings, renderer: renderer, repoDir: repoDir}, nil
}

// loadSettings uses --config when given, then a config file in the default
// locations, then the built-in defaults. --timeout overrides the file.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if found, findErr := entities.FindConfigFile(); findErr == nil {
			configPath = found
		}
	}

	settings := entities.DefaultSettings()
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)

		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, &entities.InvalidInputError{Field: "config", Message: err.Error()}
		}
		settings = loaded
	}

	if cmd.Flags().Changed("timeout") {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		if timeout < 0 {
			return nil, &entities.InvalidInputError{Field: "timeout", Message: "must not be negative"}
		}
		settings.Timeout = timeout
	}

	return settings, nil
}

// writeReport renders into memory first so a failing render never leaves a partial report on stdout.
func writeReport(cmd *cobra.Command, render func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	_, err := buf.WriteTo(cmd.OutOrStdout())
	return err
}
