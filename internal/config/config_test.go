package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"declutter/internal/application"
	"declutter/internal/domain"
)

func TestParse_JSONFile(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	raw := []byte(`{
  "default_directory": "/home/u/Desktop",
  "archive_directory": "/home/u/Archive",
  "retention_days": 14,
  "document_extensions": [".pdf", ".docx"],
  "image_extensions": [".jpg"],
  "video_extensions": [".mp4"],
  "excluded_extensions": [".tmp"],
  "database_name": "desktop_cleaner.db"
}`)

	cfg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.SourceDirectory != "/home/u/Desktop" {
		t.Errorf("default_directory should populate the source, got %q", cfg.SourceDirectory)
	}
	if cfg.DatabasePath != "/data/declutter/desktop_cleaner.db" {
		t.Errorf("unexpected database path %q", cfg.DatabasePath)
	}

	rules := cfg.RuleSet()
	if rules.RetentionDays != 14 {
		t.Errorf("expected retention 14, got %d", rules.RetentionDays)
	}
	if !rules.CategoryExtensions[domain.CategoryDocuments].Contains(".docx") {
		t.Error("documents should contain .docx")
	}
	if !rules.ExcludedExtensions.Contains(".tmp") {
		t.Error("excluded should contain .tmp")
	}
	wantDest := map[domain.Category]string{
		domain.CategoryDocuments: "/home/u/Desktop/Documents",
		domain.CategoryImages:    "/home/u/Desktop/Pictures",
		domain.CategoryVideos:    "/home/u/Desktop/Videos",
		domain.CategoryArchives:  "/home/u/Archive",
	}
	for cat, want := range wantDest {
		if got, _ := rules.Destination(cat); got != want {
			t.Errorf("%s destination = %q, want %q", cat, got, want)
		}
	}
	if err := rules.Check(); err != nil {
		t.Errorf("rule set should be valid: %v", err)
	}
}

func TestParse_Defaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	cfg, err := Parse([]byte("source_directory: /desk\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if *cfg.RetentionDays != DefaultRetentionDays {
		t.Errorf("expected default retention, got %d", *cfg.RetentionDays)
	}
	if cfg.DatabasePath != "/data/declutter/activity.db" {
		t.Errorf("unexpected database path %q", cfg.DatabasePath)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("unexpected log defaults %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if got, _ := cfg.RuleSet().Destination(domain.CategoryArchives); got != "/desk/Archives" {
		t.Errorf("unexpected archive default %q", got)
	}
}

func TestParse_ZeroRetentionIsKept(t *testing.T) {
	cfg, err := Parse([]byte("source_directory: /desk\nretention_days: 0\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.RuleSet().RetentionDays != 0 {
		t.Errorf("explicit zero retention must not be replaced by the default")
	}
}

func TestParse_ExpandsEnvAndHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	t.Setenv("DESK", "/from/env")

	cfg, err := Parse([]byte("source_directory: ${DESK}\narchive_directory: ~/Archive\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.SourceDirectory != "/from/env" {
		t.Errorf("env not expanded: %q", cfg.SourceDirectory)
	}
	if cfg.ArchiveDirectory != filepath.Join(home, "Archive") {
		t.Errorf("home not expanded: %q", cfg.ArchiveDirectory)
	}
}

func TestParse_DestinationOverride(t *testing.T) {
	cfg, err := Parse([]byte("source_directory: /desk\ndestinations:\n  images: /photos\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got, _ := cfg.RuleSet().Destination(domain.CategoryImages); got != "/photos" {
		t.Errorf("override ignored, got %q", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{"missing source", "retention_days: 5\n", "source_directory"},
		{"negative retention", "source_directory: /d\nretention_days: -1\n", "retention_days"},
		{"extension without dot", "source_directory: /d\nimage_extensions: [jpg]\n", "image_extensions"},
		{"unknown destination", "source_directory: /d\ndestinations:\n  music: /m\n", "destinations"},
		{"bad log format", "source_directory: /d\nlog_format: xml\n", "log_format"},
		{"bad log level", "source_directory: /d\nlog_level: loud\n", "log_level"},
		{"malformed yaml", "source_directory: [\n", "config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			var cfgErr *application.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, cfgErr.Field)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, application.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("source_directory: /desk\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SourceDirectory != "/desk" {
		t.Errorf("unexpected source %q", cfg.SourceDirectory)
	}
}

func TestPath(t *testing.T) {
	t.Setenv("DECLUTTER_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/cfg")

	if got := Path("/explicit.yaml"); got != "/explicit.yaml" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := Path(""); got != "/cfg/declutter/config.yaml" {
		t.Errorf("unexpected default %q", got)
	}

	t.Setenv("DECLUTTER_CONFIG", "/env.yaml")
	if got := Path(""); got != "/env.yaml" {
		t.Errorf("env should win over default, got %q", got)
	}
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger("warn", "json", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "INFO", "warning", "error", ""} {
		if _, err := ParseLevel(name); err != nil {
			t.Errorf("%q: unexpected error %v", name, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("source_directory: /desk\nretention_days: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve(path, "/other")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.SourceDirectory != "/other" || *cfg.RetentionDays != 7 {
		t.Errorf("override not applied on top of file: %+v", cfg)
	}

	cfg, err = Resolve(filepath.Join(dir, "missing.yaml"), "/only-flag")
	if err != nil {
		t.Fatalf("Resolve without file failed: %v", err)
	}
	if cfg.SourceDirectory != "/only-flag" || *cfg.RetentionDays != DefaultRetentionDays {
		t.Errorf("unexpected defaults: %+v", cfg)
	}

	if _, err := Resolve(filepath.Join(dir, "missing.yaml"), ""); !errors.Is(err, application.ErrConfiguration) {
		t.Errorf("expected configuration error without file or override, got %v", err)
	}
}
