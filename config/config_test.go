package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

var envNames = []string{
	"TRIANGLE_WIDTH",
	"TRIANGLE_HEIGHT",
	"TRIANGLE_TITLE",
	"TRIANGLE_LOG_LEVEL",
	"TRIANGLE_PROFILE",
	"WGPU_LOG_LEVEL",
	"WGPU_FORCE_FALLBACK_ADAPTER",
}

// clearEnv unsets all variables read by Load for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range envNames {
		// Setenv registers the cleanup that restores the previous value
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	conf, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if conf != Default() {
		t.Fatalf("expected defaults, got %+v", conf)
	}
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)

	_, err := Load("", filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "triangle.yaml", `
window:
  width: 640
  title: From File
log_level: debug
clear_color: [0, 0, 0, 1]
`)

	conf, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if conf.Window.Width != 640 || conf.Window.Height != 600 || conf.Window.Title != "From File" {
		t.Fatalf("unexpected window config %+v", conf.Window)
	}

	if conf.ClearColor != [4]float32{0, 0, 0, 1} {
		t.Fatalf("unexpected clear color %v", conf.ClearColor)
	}

	level, err := conf.SlogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v (%v)", level, err)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "triangle.yaml", "window:\n  width: 640\n")
	envFile := writeFile(t, ".env", "TRIANGLE_WIDTH=1280\nTRIANGLE_TITLE=From Dotenv\n")

	// the real environment wins over the .env file
	t.Setenv("TRIANGLE_TITLE", "From Env")
	t.Setenv("TRIANGLE_PROFILE", "true")
	t.Setenv("WGPU_FORCE_FALLBACK_ADAPTER", "1")
	t.Setenv("WGPU_LOG_LEVEL", "warn")

	conf, err := Load(path, envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if conf.Window.Width != 1280 {
		t.Fatalf("expected width from .env, got %d", conf.Window.Width)
	}

	if conf.Window.Title != "From Env" {
		t.Fatalf("expected title from environment, got %q", conf.Window.Title)
	}

	if !conf.Profile || !conf.ForceFallbackAdapter || conf.WGPULogLevel != "warn" {
		t.Fatalf("unexpected flags %+v", conf)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "negative width", yaml: "window:\n  width: -1\n"},
		{name: "clear color out of range", yaml: "clear_color: [2, 0, 0, 1]\n"},
		{name: "unknown log level", yaml: "log_level: loud\n"},
		{name: "broken yaml", yaml: "window: [\n"},
		{name: "width not a number", env: map[string]string{"TRIANGLE_WIDTH": "wide"}},
		{name: "profile not a bool", env: map[string]string{"TRIANGLE_PROFILE": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			for name, value := range tt.env {
				t.Setenv(name, value)
			}

			var path string
			if tt.yaml != "" {
				path = writeFile(t, "triangle.yaml", tt.yaml)
			}

			if _, err := Load(path, ""); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
