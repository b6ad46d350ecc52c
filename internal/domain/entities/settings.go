package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"

	DefaultBaseRevision = "HEAD~1"
)

// ErrConfigNotFound is returned by FindConfigFile when no file exists in
// any of the default locations.
var ErrConfigNotFound = errors.New("config file not found in default locations")

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings is the lockdiff configuration, read from an optional YAML file and
// overridden by CLI flags.
type Settings struct {
	Format       string   `yaml:"format"`        // "table", "json" or "yaml"
	BaseRevision string   `yaml:"base_revision"` // Revision compared against when refs are omitted
	Lockfiles    []string `yaml:"lockfiles"`     // Detection candidates, in priority order
}

// SupportedFormats lists the output formats in the order they are documented.
func SupportedFormats() []string {
	return []string{FormatTable, FormatJSON, FormatYAML}
}

// DefaultSettings returns the settings used when no config file is found.
func DefaultSettings() *Settings {
	return &Settings{
		Format:       FormatTable,
		BaseRevision: DefaultBaseRevision,
		Lockfiles:    []string{NpmLockfileName, YarnLockfileName},
	}
}

// NewSettings reads and parses a configuration file, expanding environment
// variables and filling unset keys with defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Format = expandEnv(settings.Format)
	settings.BaseRevision = expandEnv(settings.BaseRevision)
	for i := range settings.Lockfiles {
		settings.Lockfiles[i] = expandEnv(settings.Lockfiles[i])
	}

	settings.applyDefaults()
	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// Validate checks that the settings can drive a run.
func (s *Settings) Validate() error {
	if !slices.Contains(SupportedFormats(), s.Format) {
		return fmt.Errorf("unsupported format %q (expected one of %v)", s.Format, SupportedFormats())
	}
	if s.BaseRevision == "" {
		return errors.New("base_revision must not be empty")
	}
	for i, candidate := range s.Lockfiles {
		if ParseLockfileRef(candidate).Kind() == LockfileUnknown {
			return fmt.Errorf(
				"lockfiles[%d] %q is not a %s or %s",
				i, candidate, NpmLockfileName, YarnLockfileName,
			)
		}
	}
	return nil
}

func (s *Settings) applyDefaults() {
	defaults := DefaultSettings()
	if s.Format == "" {
		s.Format = defaults.Format
	}
	if s.BaseRevision == "" {
		s.BaseRevision = defaults.BaseRevision
	}
	if len(s.Lockfiles) == 0 {
		s.Lockfiles = defaults.Lockfiles
	}
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or ErrConfigNotFound.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".lockdiff.yaml",
		".lockdiff.yml",
		"lockdiff.yaml",
		"lockdiff.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrConfigNotFound
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
