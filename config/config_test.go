package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/kbukum/pushflow/errors"
	"github.com/kbukum/pushflow/logger"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestConfigApplyDefaults(t *testing.T) {
	t.Run("development logs at debug", func(t *testing.T) {
		cfg := Config{Name: "teams"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug logging, got %q", cfg.Logging.Level)
		}
		if cfg.Observe.TracerName == "" {
			t.Error("expected observe defaults to be applied")
		}
	})

	t.Run("production keeps info", func(t *testing.T) {
		cfg := Config{Name: "teams", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "info" {
			t.Errorf("expected info logging, got %q", cfg.Logging.Level)
		}
	})

	t.Run("explicit level wins", func(t *testing.T) {
		cfg := Config{Name: "teams", Logging: logger.Config{Level: "warn"}}
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "warn" {
			t.Errorf("expected warn logging, got %q", cfg.Logging.Level)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		cfg := Config{Name: "teams", Environment: "staging"}
		cfg.ApplyDefaults()
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		code   errors.ErrorCode
	}{
		{"valid", func(*Config) {}, ""},
		{"missing name", func(c *Config) { c.Name = "" }, errors.ErrCodeInvalidInput},
		{"bad name", func(c *Config) { c.Name = "my teams" }, errors.ErrCodeInvalidInput},
		{"bad environment", func(c *Config) { c.Environment = "qa" }, errors.ErrCodeInvalidConfig},
		{"bad logging", func(c *Config) { c.Logging.Format = "xml" }, errors.ErrCodeInvalidConfig},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.code == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.IsCode(err, tc.code) {
				t.Errorf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
name: teams
environment: staging
logging:
  level: warn
  format: json
observe:
  tracing: true
  log_values: true
`)

	cfg, err := Load("teams", WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Environment)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
	if !cfg.Observe.Tracing || !cfg.Observe.LogValues || cfg.Observe.Metrics {
		t.Errorf("unexpected observe config: %+v", cfg.Observe)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "name: teams\nenvironment: staging\n")
	t.Setenv("PUSHFLOW_LOGGING_LEVEL", "error")
	t.Setenv("PUSHFLOW_OBSERVE_LOG_VALUES", "true")
	t.Setenv("PUSHFLOW_OBSERVE_TRACER_NAME", "custom")

	cfg, err := Load("teams", WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected env to override logging.level, got %q", cfg.Logging.Level)
	}
	if !cfg.Observe.LogValues {
		t.Error("expected env to set observe.log_values")
	}
	if cfg.Observe.TracerName != "custom" {
		t.Errorf("expected env to set observe.tracer_name, got %q", cfg.Observe.TracerName)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "PUSHFLOW_TEST_ENVFILE_ENVIRONMENT=production\n")
	t.Cleanup(func() { os.Unsetenv("PUSHFLOW_TEST_ENVFILE_ENVIRONMENT") })

	cfg := struct {
		Environment string `mapstructure:"environment"`
	}{}
	err := LoadConfig("teams", &cfg,
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(envPath),
		WithEnvPrefix("PUSHFLOW_TEST_ENVFILE"),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected value from .env file, got %q", cfg.Environment)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("teams", WithConfigFile("/nonexistent/path.yml"))
	if err != nil {
		t.Fatalf("expected Load to succeed with missing file, got %v", err)
	}
	if cfg.Name != "teams" || cfg.Environment != "development" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "name: [unterminated\n")
	_, err := Load("teams", WithConfigFile(path))
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "name: teams\nlogging:\n  level: loud\n")
	_, err := Load("teams", WithConfigFile(path))
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestNewLoggerAndObserver(t *testing.T) {
	cfg := &Config{Name: "wired", Environment: "production", Logging: logger.Config{Format: "json"}}
	cfg.ApplyDefaults()

	l := cfg.NewLogger()
	if l.Name() != "wired" {
		t.Errorf("got logger %q, want wired", l.Name())
	}
	if logger.Get("wired") != l {
		t.Error("expected the logger to be registered under the config name")
	}

	obs, err := cfg.NewObserver("team-names")
	if err != nil {
		t.Fatal(err)
	}
	if obs.Name() != "team-names" {
		t.Errorf("got observer %q, want team-names", obs.Name())
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(string) error    { return nil }

func TestResolverSearchOrder(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/teams/config.yml": true,
		"./config.yml":           true,
		"./.env":                 true,
	}}
	files := (&Resolver{FileSystem: fs}).ResolveFiles("teams", LoaderConfig{})
	if files.ConfigFile != "./cmd/teams/config.yml" {
		t.Errorf("expected the program's own config first, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected ./.env, got %q", files.EnvFile)
	}
}

func TestResolverExplicitPaths(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./config.yml": true}}
	files := (&Resolver{FileSystem: fs}).ResolveFiles("teams", LoaderConfig{ConfigFile: "/etc/teams.yml"})
	if files.ConfigFile != "/etc/teams.yml" {
		t.Errorf("expected explicit path, got %q", files.ConfigFile)
	}
	if files.EnvFile != "" {
		t.Errorf("expected no env file, got %q", files.EnvFile)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	for _, opt := range []LoaderOption{
		WithFileSystem(fs),
		WithConfigFile("/path/to/config.yml"),
		WithEnvFile("/path/to/.env"),
		WithEnvPrefix("APP"),
	} {
		opt(&lc)
	}
	if lc.FileSystem != fs || lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" || lc.EnvPrefix != "APP" {
		t.Errorf("unexpected loader config: %+v", lc)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	got := envKeyVariants("OBSERVE_LOG_VALUES")
	for _, want := range []string{"observe_log_values", "observe.log.values", "observe.log_values"} {
		if !slices.Contains(got, want) {
			t.Errorf("expected %q in %v", want, got)
		}
	}
	if got := envKeyVariants("NAME"); len(got) != 1 || got[0] != "name" {
		t.Errorf("got %v, want [name]", got)
	}
	for _, v := range envKeyVariants("A_B_C_D") {
		if strings.Count(v, ".")+strings.Count(v, "_") != 3 {
			t.Errorf("variant %q lost a separator", v)
		}
	}
}
