package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/cropsim/internal/config"
	"github.com/san-kum/cropsim/internal/export"
	"github.com/san-kum/cropsim/internal/sim"
	"github.com/san-kum/cropsim/internal/sweep"
	"github.com/san-kum/cropsim/internal/tui"
)

var (
	// Scenario flags
	days        int
	ppfd        float64
	photoperiod float64
	co2         float64
	targetTemp  float64
	initLeaf    float64
	area        float64
	// Chamber flags
	ledPower     float64
	otherPower   float64
	cooling      float64
	ambient      float64
	heatCapacity float64
	heatLoss     float64
	// Config file and preset
	configFile string
	preset     string
	// Sweep flags
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	// Chart flags
	svgOut bool
)

// main registers the cropsim commands; with no subcommand it launches the
// interactive dashboard.
func main() {
	rootCmd := &cobra.Command{
		Use:   "cropsim",
		Short: "potato growth-chamber simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.RunDashboard(cfg)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one simulation and print the summary",
		RunE:  runSimulation,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "run and plot the result series in the terminal",
		RunE:  plotRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [axis]",
		Short: "sweep one parameter and tabulate the outcomes",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 150.0, "sweep range minimum")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 800.0, "sweep range maximum")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 8, "number of values")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [file]",
		Short: "run and export the series to CSV (- for stdout)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runFromFlags(cmd)
			if err != nil {
				return err
			}
			return export.CSVFile(args[0], res)
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [file]",
		Short: "run and export the series to JSON (- for stdout)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runFromFlags(cmd)
			if err != nil {
				return err
			}
			return export.JSONFile(args[0], res)
		},
	}

	chartCmd := &cobra.Command{
		Use:   "chart [dir]",
		Short: "run and write chart images into a directory",
		Args:  cobra.ExactArgs(1),
		RunE:  writeCharts,
	}
	chartCmd.Flags().BoolVar(&svgOut, "svg", false, "write SVG instead of PNG")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-14s %3dd  %4.0f ppfd  %4.1fh  %4.0f ppm\n",
					name, cfg.Scenario.Days, cfg.Scenario.PPFD,
					cfg.Scenario.PhotoperiodH, cfg.Scenario.CO2PPM)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write the default configuration to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "interactive parameter dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.RunDashboard(cfg)
		},
	}

	for _, c := range []*cobra.Command{rootCmd, runCmd, plotCmd, sweepCmd, exportCSVCmd, exportJSONCmd, chartCmd, dashboardCmd} {
		addScenarioFlags(c)
	}

	rootCmd.AddCommand(runCmd, plotCmd, sweepCmd, exportCSVCmd, exportJSONCmd, chartCmd, presetsCmd, initCmd, dashboardCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&days, "days", 90, "simulation length in days")
	f.Float64Var(&ppfd, "ppfd", 350.0, "photon flux density (μmol/m²s)")
	f.Float64Var(&photoperiod, "photoperiod", 12.0, "light hours per day")
	f.Float64Var(&co2, "co2", 800.0, "CO2 concentration (ppm)")
	f.Float64Var(&targetTemp, "target-temp", 18.0, "chamber setpoint (°C)")
	f.Float64Var(&initLeaf, "leaf", 1.0, "initial leaf dry mass (g)")
	f.Float64Var(&area, "area", 1.0, "ground area (m²)")
	f.Float64Var(&ledPower, "led-power", 400.0, "LED power (W)")
	f.Float64Var(&otherPower, "other-power", 80.0, "other electrical loads (W)")
	f.Float64Var(&cooling, "cooling", 25000.0, "cooling capacity (kJ/day)")
	f.Float64Var(&ambient, "ambient", 20.0, "ambient temperature (°C)")
	f.Float64Var(&heatCapacity, "heat-capacity", 1200.0, "chamber thermal mass (kJ/K)")
	f.Float64Var(&heatLoss, "heat-loss", 650.0, "loss coefficient (kJ/day/K)")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file and explicitly set flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flagSets := map[string]func(){
		"days":          func() { cfg.Scenario.Days = days },
		"ppfd":          func() { cfg.Scenario.PPFD = ppfd },
		"photoperiod":   func() { cfg.Scenario.PhotoperiodH = photoperiod },
		"co2":           func() { cfg.Scenario.CO2PPM = co2 },
		"target-temp":   func() { cfg.Scenario.TargetTempC = targetTemp },
		"leaf":          func() { cfg.Scenario.InitLeafDryG = initLeaf },
		"area":          func() { cfg.Scenario.GroundAreaM2 = area },
		"led-power":     func() { cfg.Chamber.LEDPowerW = ledPower },
		"other-power":   func() { cfg.Chamber.OtherPowerW = otherPower },
		"cooling":       func() { cfg.Chamber.CoolingCapacityKJDay = cooling },
		"ambient":       func() { cfg.Chamber.AmbientTempC = ambient },
		"heat-capacity": func() { cfg.Chamber.HeatCapacityKJK = heatCapacity },
		"heat-loss":     func() { cfg.Chamber.HeatLossKJDayK = heatLoss },
	}
	for name, apply := range flagSets {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}

	return cfg, nil
}

func runFromFlags(cmd *cobra.Command) (*sim.Result, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	scn, gp, cp := cfg.Records()
	return sim.New(gp, cp).Run(scn)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	scn, gp, cp := cfg.Records()

	fmt.Printf("running %d-day potato simulation...\n", scn.Days)
	start := time.Now()

	res, err := sim.New(gp, cp).Run(scn)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	s := res.Summary()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "tuber fresh mass\t%.1f g\n", s.TuberFreshG)
	fmt.Fprintf(w, "total fresh mass\t%.1f g\n", s.TotalFreshG)
	fmt.Fprintf(w, "energy consumed\t%.1f kWh\n", s.EnergyKWh)
	fmt.Fprintf(w, "yield per kWh\t%.2f g\n", s.YieldPerKWh)
	fmt.Fprintf(w, "thermal time\t%.0f °C·d\n", s.ThermalTime)
	fmt.Fprintf(w, "stage\t%s\n", gp.Stage(s.ThermalTime))
	fmt.Fprintf(w, "daily light integral\t%.2f mol/m²d\n", s.DLI)
	fmt.Fprintf(w, "final chamber temp\t%.1f °C\n", s.FinalChamberC)
	fmt.Fprintf(w, "peak chamber temp\t%.1f °C\n", s.PeakChamberC)
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	res, err := runFromFlags(cmd)
	if err != nil {
		return err
	}

	panels := []struct {
		series  []float64
		caption string
	}{
		{res.TuberFresh, "tuber fresh mass (g)"},
		{res.FreshTotal, "total fresh mass (g)"},
		{res.ThermalTime, "thermal time (°C·d)"},
		{res.ChamberTemp, "chamber temp (°C)"},
		{res.CumEnergyKWh, "cumulative energy (kWh)"},
	}

	fmt.Printf("samples: %d   dli: %.2f mol/m²d\n\n", len(res.Day), res.DLI)
	for _, p := range panels {
		graph := asciigraph.Plot(p.series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	axis := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	scn, gp, cp := cfg.Records()

	values := sweep.Values(sweepMin, sweepMax, sweepSteps)
	points, err := sweep.Run(axis, values, scn, gp, cp)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tTUBER (g)\tTOTAL (g)\tENERGY (kWh)\tG/KWH\tPEAK °C\n", axis)
	yields := make([]float64, len(points))
	for i, p := range points {
		yields[i] = p.Summary.TuberFreshG
		fmt.Fprintf(w, "%.1f\t%.1f\t%.1f\t%.1f\t%.2f\t%.1f\n",
			p.Value, p.Summary.TuberFreshG, p.Summary.TotalFreshG,
			p.Summary.EnergyKWh, p.Summary.YieldPerKWh, p.Summary.PeakChamberC)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(yields) > 1 {
		fmt.Println()
		graph := asciigraph.Plot(yields,
			asciigraph.Height(8),
			asciigraph.Width(72),
			asciigraph.Caption(fmt.Sprintf("tuber fresh mass vs %s", axis)),
		)
		fmt.Println(graph)
	}
	return nil
}

func writeCharts(cmd *cobra.Command, args []string) error {
	dir := args[0]

	res, err := runFromFlags(cmd)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if svgOut {
		files := []struct {
			name   string
			series []float64
			title  string
		}{
			{"tuber_fresh.svg", res.TuberFresh, "tuber fresh mass (g)"},
			{"thermal_time.svg", res.ThermalTime, "thermal time (°C·d)"},
			{"chamber_temp.svg", res.ChamberTemp, "chamber temp (°C)"},
		}
		for _, f := range files {
			path := filepath.Join(dir, f.name)
			if err := export.SVGFile(path, f.series, f.title); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
		}
		return nil
	}

	paths, err := export.PNGCharts(dir, res)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Printf("wrote %s\n", p)
	}
	return nil
}
