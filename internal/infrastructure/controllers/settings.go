package controllers

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/lockdiff/internal/domain/entities"
)

const (
	flagConfig  = "config"
	flagFormat  = "format"
	flagBase    = "base"
	flagVerbose = "verbose"
)

// AddGlobalFlags adds the persistent flags shared by every command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(flagConfig, "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP(flagFormat, "f", entities.FormatTable,
		fmt.Sprintf("Output format %v", entities.SupportedFormats()))
	cmd.PersistentFlags().String(flagBase, entities.DefaultBaseRevision,
		"Git revision compared against when a lockfile reference is omitted")
	cmd.PersistentFlags().BoolP(flagVerbose, "v", false,
		"Enable verbose output")
}

// loadSettings reads the config file (explicit or auto-detected) and
// applies the flags the user set explicitly on top of it.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := readSettingsFile(cmd)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed(flagFormat) {
		settings.Format, _ = cmd.Flags().GetString(flagFormat)
	}
	if cmd.Flags().Changed(flagBase) {
		settings.BaseRevision, _ = cmd.Flags().GetString(flagBase)
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

func readSettingsFile(cmd *cobra.Command) (*entities.Settings, error) {
	cfgPath, _ := cmd.Flags().GetString(flagConfig)
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if errors.Is(err, entities.ErrConfigNotFound) {
			logger.Debug("No config file found, using defaults")
			return entities.DefaultSettings(), nil
		}
		if err != nil {
			return nil, err
		}
		cfgPath = found
	}

	logger.Debugf("Using config file: %s", cfgPath)
	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

// commandContext returns the context Cobra attached to the command.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
