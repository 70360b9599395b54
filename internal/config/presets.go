package config

import "sort"

func preset(mut func(*Config)) *Config {
	c := DefaultConfig()
	mut(c)
	return c
}

// Presets are named configurations covering the common what-if scenarios.
// Each starts from the defaults so unlisted parameters stay calibrated.
var Presets = map[string]*Config{
	"baseline": preset(func(c *Config) {}),
	"short-day": preset(func(c *Config) {
		c.Scenario.PhotoperiodH = 10.0
	}),
	"long-day": preset(func(c *Config) {
		c.Scenario.PhotoperiodH = 16.0
	}),
	"high-light": preset(func(c *Config) {
		c.Scenario.PPFD = 600.0
		c.Chamber.LEDPowerW = 700.0
	}),
	"co2-enriched": preset(func(c *Config) {
		c.Scenario.CO2PPM = 1200.0
	}),
	"warm-room": preset(func(c *Config) {
		c.Chamber.AmbientTempC = 26.0
		c.Chamber.CoolingCapacityKJDay = 40000.0
	}),
	"full-season": preset(func(c *Config) {
		c.Scenario.Days = 150
	}),
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
