package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"declutter/internal/application"
	"declutter/internal/domain"
)

const (
	// DefaultRetentionDays applies when retention_days is omitted
	DefaultRetentionDays = 30

	// DefaultDatabaseName is the ledger file created under the data directory
	DefaultDatabaseName = "activity.db"

	appName = "declutter"
)

// Config is the on-disk configuration. JSON files parse as YAML too.
type Config struct {
	SourceDirectory  string `yaml:"source_directory"`
	DefaultDirectory string `yaml:"default_directory"`
	ArchiveDirectory string `yaml:"archive_directory"`
	RetentionDays    *int   `yaml:"retention_days"`

	DocumentExtensions []string `yaml:"document_extensions"`
	ImageExtensions    []string `yaml:"image_extensions"`
	VideoExtensions    []string `yaml:"video_extensions"`
	ExcludedExtensions []string `yaml:"excluded_extensions"`

	// Destinations overrides the directory of individual categories
	Destinations map[string]string `yaml:"destinations"`

	DatabasePath string `yaml:"database_path"`
	DatabaseName string `yaml:"database_name"`

	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`
	MetricsTextfile string `yaml:"metrics_textfile"`
}

// Path returns the config file location: explicit flag value, then
// DECLUTTER_CONFIG, then ~/.config/declutter/config.yaml.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("DECLUTTER_CONFIG"); env != "" {
		return env
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName, "config.yaml")
}

// Load reads, expands, normalizes and validates the config at path
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &application.ConfigurationError{Field: "config", Message: fmt.Sprintf("config file not found at %s", path)}
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes raw config bytes. ${VAR} references are expanded first.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, &application.ConfigurationError{Field: "config", Message: fmt.Sprintf("failed to parse: %v", err)}
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	if c.SourceDirectory == "" {
		c.SourceDirectory = c.DefaultDirectory
	}
	if c.RetentionDays == nil {
		days := DefaultRetentionDays
		c.RetentionDays = &days
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}

	var err error
	if c.SourceDirectory, err = ExpandHome(c.SourceDirectory); err != nil {
		return err
	}
	if c.ArchiveDirectory, err = ExpandHome(c.ArchiveDirectory); err != nil {
		return err
	}
	if c.MetricsTextfile, err = ExpandHome(c.MetricsTextfile); err != nil {
		return err
	}
	for name, dir := range c.Destinations {
		if c.Destinations[name], err = ExpandHome(dir); err != nil {
			return err
		}
	}

	if c.DatabasePath == "" {
		c.DatabasePath = c.DatabaseName
	}
	c.DatabasePath, err = resolveDatabasePath(c.DatabasePath)
	return err
}

func (c *Config) validate() error {
	if err := application.ValidateRequired("source_directory", c.SourceDirectory); err != nil {
		return err
	}
	if err := application.ValidateNonNegative("retention_days", *c.RetentionDays); err != nil {
		return err
	}

	lists := []struct {
		field string
		exts  []string
	}{
		{"document_extensions", c.DocumentExtensions},
		{"image_extensions", c.ImageExtensions},
		{"video_extensions", c.VideoExtensions},
		{"excluded_extensions", c.ExcludedExtensions},
	}
	for _, l := range lists {
		if err := application.ValidateExtensions(l.field, l.exts); err != nil {
			return err
		}
	}

	for name, dir := range c.Destinations {
		if !domain.Category(name).IsKnown() {
			return &application.ConfigurationError{Field: "destinations", Message: fmt.Sprintf("unknown category %q", name)}
		}
		if strings.TrimSpace(dir) == "" {
			return &application.ConfigurationError{Field: "destinations", Message: fmt.Sprintf("empty directory for %s", name)}
		}
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return &application.ConfigurationError{Field: "log_format", Message: fmt.Sprintf("unsupported log format %q", c.LogFormat)}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return &application.ConfigurationError{Field: "log_level", Message: err.Error()}
	}
	return nil
}

// RuleSet builds the immutable routing rules from the config
func (c *Config) RuleSet() domain.RuleSet {
	archives := c.ArchiveDirectory
	if archives == "" {
		archives = filepath.Join(c.SourceDirectory, "Archives")
	}

	destinations := map[domain.Category]string{
		domain.CategoryDocuments: filepath.Join(c.SourceDirectory, "Documents"),
		domain.CategoryImages:    filepath.Join(c.SourceDirectory, "Pictures"),
		domain.CategoryVideos:    filepath.Join(c.SourceDirectory, "Videos"),
		domain.CategoryArchives:  archives,
	}
	for name, dir := range c.Destinations {
		destinations[domain.Category(name)] = dir
	}

	return domain.RuleSet{
		CategoryExtensions: map[domain.Category]domain.ExtensionSet{
			domain.CategoryDocuments: domain.NewExtensionSet(c.DocumentExtensions...),
			domain.CategoryImages:    domain.NewExtensionSet(c.ImageExtensions...),
			domain.CategoryVideos:    domain.NewExtensionSet(c.VideoExtensions...),
		},
		ExcludedExtensions: domain.NewExtensionSet(c.ExcludedExtensions...),
		RetentionDays:      *c.RetentionDays,
		Destinations:       destinations,
	}
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// DataDir returns the XDG data directory for declutter
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName)
}

// resolveDatabasePath places bare or relative names under DataDir
func resolveDatabasePath(path string) (string, error) {
	if path == "" {
		return filepath.Join(DataDir(), DefaultDatabaseName), nil
	}
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return expanded, nil
	}
	return filepath.Join(DataDir(), expanded), nil
}

// Default returns the configuration used when no file exists:
// every default applied and no extension routing.
func Default(sourceDir string) (*Config, error) {
	cfg := &Config{SourceDirectory: sourceDir}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads the file at path, letting a non-empty sourceOverride replace
// the configured source directory. A missing file is tolerated only when
// sourceOverride is set.
func Resolve(path, sourceOverride string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && sourceOverride != "" {
		return Default(sourceOverride)
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if sourceOverride != "" {
		if cfg.SourceDirectory, err = ExpandHome(sourceOverride); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
