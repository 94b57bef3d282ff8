package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/VLVLKY/svelte/packages/compiler/src/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestNewCompilerConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewCompilerConfig()
		want := &config.CompilerConfig{Name: "Component"}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("options", func(t *testing.T) {
		cfg := config.NewCompilerConfig(
			config.WithName("App"),
			config.WithDev(true),
			config.WithStore(true),
		)
		want := &config.CompilerConfig{Name: "App", Dev: true, Store: true}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "compiler.yaml", "name: App\nstore: true\n")
		cfg := config.NewCompilerConfig()
		if err := cfg.LoadFile(path); err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		want := &config.CompilerConfig{Name: "App", Store: true}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "compiler.json", `{"name": "App", "dev": true}`)
		cfg := config.NewCompilerConfig()
		if err := cfg.LoadFile(path); err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		want := &config.CompilerConfig{Name: "App", Dev: true}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown extension falls back to yaml then json", func(t *testing.T) {
		path := writeFile(t, "compiler.conf", `{"store": true}`)
		cfg := config.NewCompilerConfig()
		if err := cfg.LoadFile(path); err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		if !cfg.Store {
			t.Error("Store = false, want true")
		}
	})

	t.Run("merge keeps prior name when absent", func(t *testing.T) {
		path := writeFile(t, "compiler.yaml", "dev: true\n")
		cfg := config.NewCompilerConfig(config.WithName("App"), config.WithStore(true))
		if err := cfg.LoadFile(path); err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		want := &config.CompilerConfig{Name: "App", Dev: true, Store: true}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.NewCompilerConfig()
		if err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}
