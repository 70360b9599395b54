package export

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/cropsim/internal/sim"
)

// chartSpec names one of the standard run charts.
type chartSpec struct {
	file   string
	title  string
	yLabel string
	series func(*sim.Result) []float64
}

var charts = []chartSpec{
	{"tuber_fresh.png", "Potato Tuber Fresh Mass", "Tuber Fresh Mass (g)",
		func(r *sim.Result) []float64 { return r.TuberFresh }},
	{"thermal_time.png", "Accumulated Thermal Time", "Thermal Time (°C·day)",
		func(r *sim.Result) []float64 { return r.ThermalTime }},
	{"chamber_temp.png", "Chamber Temperature", "Chamber Temp (°C)",
		func(r *sim.Result) []float64 { return r.ChamberTemp }},
}

// PNGCharts writes the three standard run charts into dir and returns the
// paths written.
func PNGCharts(dir string, res *sim.Result) ([]string, error) {
	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		path := filepath.Join(dir, c.file)
		if err := linePNG(path, c.title, c.yLabel, res.Day, c.series(res)); err != nil {
			return paths, fmt.Errorf("chart %s: %w", c.file, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func linePNG(path, title, yLabel string, days []int, series []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Day"
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(series))
	for i := range series {
		pts[i].X = float64(days[i])
		pts[i].Y = series[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
