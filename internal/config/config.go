// Package config reads and writes cropsim run configurations as YAML.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/cropsim/internal/chamber"
	"github.com/san-kum/cropsim/internal/crop"
	"github.com/san-kum/cropsim/internal/sim"
)

type Config struct {
	Scenario ScenarioConfig `yaml:"scenario"`
	Growth   GrowthConfig   `yaml:"growth"`
	Chamber  ChamberConfig  `yaml:"chamber"`
}

type ScenarioConfig struct {
	Days         int     `yaml:"days"`
	PPFD         float64 `yaml:"ppfd"`
	PhotoperiodH float64 `yaml:"photoperiod_h"`
	CO2PPM       float64 `yaml:"co2_ppm"`
	TargetTempC  float64 `yaml:"target_temp_c"`
	InitLeafDryG float64 `yaml:"init_leaf_dry_g"`
	GroundAreaM2 float64 `yaml:"ground_area_m2"`
}

type GrowthConfig struct {
	LUE             float64 `yaml:"lue_g_per_mj"`
	PARFraction     float64 `yaml:"par_fraction"`
	SLA             float64 `yaml:"sla_m2_per_g"`
	KExtinction     float64 `yaml:"k_extinction"`
	DryToFreshRatio float64 `yaml:"dry_to_fresh_ratio"`
	BaseTempC       float64 `yaml:"base_temp_c"`
	OptTempC        float64 `yaml:"opt_temp_c"`
	MaxTempC        float64 `yaml:"max_temp_c"`
	CO2RefPPM       float64 `yaml:"co2_ref_ppm"`
	CO2SatPPM       float64 `yaml:"co2_sat_ppm"`
	TTEmergence     float64 `yaml:"tt_emergence"`
	TTTuberInit     float64 `yaml:"tt_tuber_init"`
	TTMaturity      float64 `yaml:"tt_maturity"`
	MaintFracPerDay float64 `yaml:"maint_frac_per_day"`
}

type ChamberConfig struct {
	HeatCapacityKJK      float64 `yaml:"heat_capacity_kj_k"`
	HeatLossKJDayK       float64 `yaml:"heat_loss_kj_day_k"`
	LEDPowerW            float64 `yaml:"led_power_w"`
	OtherPowerW          float64 `yaml:"other_power_w"`
	CoolingCapacityKJDay float64 `yaml:"cooling_capacity_kj_day"`
	AmbientTempC         float64 `yaml:"ambient_temp_c"`
}

// DefaultConfig mirrors the three records' package defaults.
func DefaultConfig() *Config {
	scn := sim.DefaultScenario()
	gp := crop.DefaultGrowthParams()
	cp := chamber.DefaultParams()
	return &Config{
		Scenario: ScenarioConfig{
			Days:         scn.Days,
			PPFD:         scn.PPFD,
			PhotoperiodH: scn.PhotoperiodH,
			CO2PPM:       scn.CO2PPM,
			TargetTempC:  scn.TargetTempC,
			InitLeafDryG: scn.InitialLeafDryG,
			GroundAreaM2: scn.GroundAreaM2,
		},
		Growth: GrowthConfig{
			LUE:             gp.LUE,
			PARFraction:     gp.PARFraction,
			SLA:             gp.SLA,
			KExtinction:     gp.KExtinction,
			DryToFreshRatio: gp.DryToFreshRatio,
			BaseTempC:       gp.BaseTempC,
			OptTempC:        gp.OptTempC,
			MaxTempC:        gp.MaxTempC,
			CO2RefPPM:       gp.CO2RefPPM,
			CO2SatPPM:       gp.CO2SatPPM,
			TTEmergence:     gp.TTEmergence,
			TTTuberInit:     gp.TTTuberInit,
			TTMaturity:      gp.TTMaturity,
			MaintFracPerDay: gp.MaintFracPerDay,
		},
		Chamber: ChamberConfig{
			HeatCapacityKJK:      cp.HeatCapacityKJK,
			HeatLossKJDayK:       cp.HeatLossKJDayK,
			LEDPowerW:            cp.LEDPowerW,
			OtherPowerW:          cp.OtherPowerW,
			CoolingCapacityKJDay: cp.CoolingCapacityKJDay,
			AmbientTempC:         cp.AmbientTempC,
		},
	}
}

// Load reads a YAML config file over the defaults, so partial documents are
// valid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Records converts the config document into the three parameter records the
// engine consumes.
func (c *Config) Records() (sim.Scenario, crop.GrowthParams, chamber.Params) {
	scn := sim.Scenario{
		Days:            c.Scenario.Days,
		PPFD:            c.Scenario.PPFD,
		PhotoperiodH:    c.Scenario.PhotoperiodH,
		CO2PPM:          c.Scenario.CO2PPM,
		TargetTempC:     c.Scenario.TargetTempC,
		InitialLeafDryG: c.Scenario.InitLeafDryG,
		GroundAreaM2:    c.Scenario.GroundAreaM2,
	}
	gp := crop.GrowthParams{
		LUE:             c.Growth.LUE,
		PARFraction:     c.Growth.PARFraction,
		SLA:             c.Growth.SLA,
		KExtinction:     c.Growth.KExtinction,
		DryToFreshRatio: c.Growth.DryToFreshRatio,
		BaseTempC:       c.Growth.BaseTempC,
		OptTempC:        c.Growth.OptTempC,
		MaxTempC:        c.Growth.MaxTempC,
		CO2RefPPM:       c.Growth.CO2RefPPM,
		CO2SatPPM:       c.Growth.CO2SatPPM,
		TTEmergence:     c.Growth.TTEmergence,
		TTTuberInit:     c.Growth.TTTuberInit,
		TTMaturity:      c.Growth.TTMaturity,
		MaintFracPerDay: c.Growth.MaintFracPerDay,
	}
	cp := chamber.Params{
		HeatCapacityKJK:      c.Chamber.HeatCapacityKJK,
		HeatLossKJDayK:       c.Chamber.HeatLossKJDayK,
		LEDPowerW:            c.Chamber.LEDPowerW,
		OtherPowerW:          c.Chamber.OtherPowerW,
		CoolingCapacityKJDay: c.Chamber.CoolingCapacityKJDay,
		AmbientTempC:         c.Chamber.AmbientTempC,
	}
	return scn, gp, cp
}
