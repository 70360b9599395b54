// Package sweep runs one deterministic simulation per value of a single
// scenario or chamber parameter, for comparing outcomes across a range.
package sweep

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/cropsim/internal/chamber"
	"github.com/san-kum/cropsim/internal/crop"
	"github.com/san-kum/cropsim/internal/sim"
)

var ErrUnknownAxis = errors.New("sweep: unknown axis")

// Point is the outcome of one run within a sweep.
type Point struct {
	Value   float64
	Summary sim.Summary
}

// axes maps an axis name to a setter on copies of the input records. The
// records are copied per run, so a sweep never mutates the caller's inputs.
var axes = map[string]func(*sim.Scenario, *chamber.Params, float64){
	"ppfd":        func(s *sim.Scenario, _ *chamber.Params, v float64) { s.PPFD = v },
	"photoperiod": func(s *sim.Scenario, _ *chamber.Params, v float64) { s.PhotoperiodH = v },
	"co2":         func(s *sim.Scenario, _ *chamber.Params, v float64) { s.CO2PPM = v },
	"target-temp": func(s *sim.Scenario, _ *chamber.Params, v float64) { s.TargetTempC = v },
	"area":        func(s *sim.Scenario, _ *chamber.Params, v float64) { s.GroundAreaM2 = v },
	"days":        func(s *sim.Scenario, _ *chamber.Params, v float64) { s.Days = int(v) },
	"led-power":   func(_ *sim.Scenario, c *chamber.Params, v float64) { c.LEDPowerW = v },
	"cooling":     func(_ *sim.Scenario, c *chamber.Params, v float64) { c.CoolingCapacityKJDay = v },
	"ambient":     func(_ *sim.Scenario, c *chamber.Params, v float64) { c.AmbientTempC = v },
}

// Axes lists the sweepable parameter names.
func Axes() []string {
	names := make([]string, 0, len(axes))
	for name := range axes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run sweeps the named axis across values, executing one engine run per
// value in order. Runs are sequential; each one allocates its own state.
func Run(axis string, values []float64, scn sim.Scenario, gp crop.GrowthParams, cp chamber.Params) ([]Point, error) {
	set, ok := axes[axis]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownAxis, axis, Axes())
	}

	points := make([]Point, 0, len(values))
	for _, v := range values {
		s := scn
		c := cp
		set(&s, &c, v)

		res, err := sim.New(gp, c).Run(s)
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%v: %w", axis, v, err)
		}
		points = append(points, Point{Value: v, Summary: res.Summary()})
	}
	return points, nil
}

// Values builds n evenly spaced sweep values over [min, max]. n below 2
// collapses to the two endpoints.
func Values(min, max float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	step := (max - min) / float64(n-1)
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = min + float64(i)*step
	}
	vals[n-1] = max
	return vals
}
