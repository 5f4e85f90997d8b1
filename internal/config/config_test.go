package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		got := GlobalPath()
		want := "/custom/config/craftconnect/craftconnect.yml"
		if got != want {
			t.Errorf("GlobalPath() = %v, want %v", got, want)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		os.Unsetenv("XDG_CONFIG_HOME")
		got := GlobalPath()
		if !filepath.IsAbs(got) {
			t.Errorf("GlobalPath() should return absolute path, got %v", got)
		}
		if filepath.Base(got) != "craftconnect.yml" {
			t.Errorf("GlobalPath() should end with craftconnect.yml, got %v", got)
		}
	})
}

func TestProjectPath(t *testing.T) {
	got := ProjectPath()
	want := "craftconnect.yml"
	if got != want {
		t.Errorf("ProjectPath() = %v, want %v", got, want)
	}
}

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Chdir(tmpDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DataDir != ".craftconnect" {
		t.Errorf("default data_dir = %q, want .craftconnect", cfg.DataDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log_level = %q, want info", cfg.LogLevel)
	}
	if cfg.LLMModel != "gpt-4o-mini" {
		t.Errorf("default llm_model = %q, want gpt-4o-mini", cfg.LLMModel)
	}
	if cfg.LLMAPIKey != "" {
		t.Errorf("llm_api_key should have no default, got %q", cfg.LLMAPIKey)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Chdir(tmpDir)

	t.Setenv("CRAFTCONNECT_LLM_MODEL", "gpt-4o")
	t.Setenv("CRAFTCONNECT_ARTISAN_LOCATION", "Jaipur, Rajasthan")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.LLMModel != "gpt-4o" {
		t.Errorf("llm_model = %q, want env override gpt-4o", cfg.LLMModel)
	}
	if cfg.ArtisanLocation != "Jaipur, Rajasthan" {
		t.Errorf("artisan_location = %q, want env override", cfg.ArtisanLocation)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	xdgDir := filepath.Join(tmpDir, "config")
	t.Setenv("XDG_CONFIG_HOME", xdgDir)
	t.Chdir(tmpDir)

	globalPath := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(globalPath), 0755); err != nil {
		t.Fatalf("failed to create global config dir: %v", err)
	}
	if err := os.WriteFile(globalPath, []byte("llm_model: global-model\nartisan_name: Meera\n"), 0644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}
	if err := os.WriteFile(ProjectPath(), []byte("llm_model: project-model\n"), 0644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.LLMModel != "project-model" {
		t.Errorf("llm_model = %q, want project-model (project wins)", cfg.LLMModel)
	}
	if cfg.ArtisanName != "Meera" {
		t.Errorf("artisan_name = %q, want Meera (global preserved)", cfg.ArtisanName)
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()
	xdgDir := filepath.Join(tmpDir, "config")
	t.Setenv("XDG_CONFIG_HOME", xdgDir)
	t.Chdir(tmpDir)

	t.Run("no config exists", func(t *testing.T) {
		if Exists() {
			t.Error("Exists() = true, want false when no config files exist")
		}
	})

	t.Run("global config exists", func(t *testing.T) {
		globalPath := GlobalPath()
		if err := os.MkdirAll(filepath.Dir(globalPath), 0755); err != nil {
			t.Fatalf("failed to create global config dir: %v", err)
		}
		if err := os.WriteFile(globalPath, []byte("llm_model: test\n"), 0644); err != nil {
			t.Fatalf("failed to write global config: %v", err)
		}
		defer os.Remove(globalPath)

		if !Exists() {
			t.Error("Exists() = false, want true when global config exists")
		}
	})
}

func TestWriteProject_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Chdir(tmpDir)

	in := &Config{
		DataDir:         ".craftconnect",
		LogLevel:        "debug",
		LLMModel:        "gpt-4o",
		ArtisanName:     "Ravi",
		ArtisanLocation: "Jodhpur",
	}
	if err := WriteProject(in); err != nil {
		t.Fatalf("WriteProject failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ArtisanName != "Ravi" || cfg.ArtisanLocation != "Jodhpur" || cfg.LogLevel != "debug" {
		t.Errorf("round trip mismatch: %+v", cfg)
	}
}
