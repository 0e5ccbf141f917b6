package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
	if cfg.Runs <= 0 {
		t.Error("runs should be positive")
	}
	if cfg.Bins <= 0 {
		t.Error("bins should be positive")
	}
	if len(cfg.NValues) == 0 {
		t.Error("expected default N values")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walklab.yaml")

	cfg := DefaultConfig()
	cfg.Steps = 321
	cfg.Seed = 99
	cfg.NValues = []int{10, 20, 30}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Steps != 321 {
		t.Errorf("expected steps 321, got %d", loaded.Steps)
	}
	if loaded.Seed != 99 {
		t.Errorf("expected seed 99, got %d", loaded.Seed)
	}
	if len(loaded.NValues) != 3 || loaded.NValues[1] != 20 {
		t.Errorf("unexpected n_values: %v", loaded.NValues)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("quick")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Steps != 200 {
		t.Errorf("expected steps 200, got %d", cfg.Steps)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] >= presets[i] {
			t.Error("presets not sorted")
		}
	}
}
