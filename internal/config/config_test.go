package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario.Days != 90 {
		t.Errorf("expected 90 days, got %d", cfg.Scenario.Days)
	}
	if cfg.Growth.LUE <= 0 {
		t.Error("LUE should be positive")
	}
	if cfg.Chamber.HeatCapacityKJK <= 0 {
		t.Error("heat capacity should be positive")
	}
	if !(cfg.Growth.BaseTempC < cfg.Growth.OptTempC && cfg.Growth.OptTempC < cfg.Growth.MaxTempC) {
		t.Error("cardinal temperatures out of order in defaults")
	}
	if cfg.Growth.CO2RefPPM >= cfg.Growth.CO2SatPPM {
		t.Error("CO2 reference points out of order in defaults")
	}
}

func TestRecords(t *testing.T) {
	scn, gp, cp := DefaultConfig().Records()

	if scn.PPFD != 350.0 {
		t.Errorf("scenario ppfd = %v, want 350", scn.PPFD)
	}
	if gp.TTTuberInit != 350.0 {
		t.Errorf("tuber-init threshold = %v, want 350", gp.TTTuberInit)
	}
	if cp.CoolingCapacityKJDay != 25000.0 {
		t.Errorf("cooling capacity = %v, want 25000", cp.CoolingCapacityKJDay)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Scenario.Days = 120
	cfg.Scenario.PhotoperiodH = 10.5
	cfg.Chamber.LEDPowerW = 650.0

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Scenario.Days != 120 {
		t.Errorf("days = %d, want 120", loaded.Scenario.Days)
	}
	if loaded.Scenario.PhotoperiodH != 10.5 {
		t.Errorf("photoperiod = %v, want 10.5", loaded.Scenario.PhotoperiodH)
	}
	if loaded.Chamber.LEDPowerW != 650.0 {
		t.Errorf("led power = %v, want 650", loaded.Chamber.LEDPowerW)
	}
}

func TestLoad_PartialOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	doc := "scenario:\n  ppfd: 500\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Scenario.PPFD != 500.0 {
		t.Errorf("ppfd = %v, want 500", cfg.Scenario.PPFD)
	}
	if cfg.Scenario.Days != 90 {
		t.Errorf("days = %d, want default 90", cfg.Scenario.Days)
	}
	if cfg.Growth.KExtinction != 0.65 {
		t.Errorf("k_extinction = %v, want default 0.65", cfg.Growth.KExtinction)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("short-day")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Scenario.PhotoperiodH != 10.0 {
		t.Errorf("photoperiod = %v, want 10", cfg.Scenario.PhotoperiodH)
	}
	// Unlisted fields keep the defaults.
	if cfg.Scenario.PPFD != 350.0 {
		t.Errorf("ppfd = %v, want default 350", cfg.Scenario.PPFD)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}
