package sim

// Scenario defines the environmental conditions and initial state for one
// simulation run. It is read-only to the engine.
type Scenario struct {
	Days            int     // simulation length; the result carries Days+1 samples
	PPFD            float64 // photon flux density, μmol·m⁻²·s⁻¹
	PhotoperiodH    float64 // hours of light per day
	CO2PPM          float64 // CO2 concentration, ppm
	TargetTempC     float64 // chamber temperature setpoint
	InitialLeafDryG float64 // starting leaf dry mass, g
	GroundAreaM2    float64 // ground area per plant, m²
}

// DefaultScenario returns the reference 90-day short-day scenario.
func DefaultScenario() Scenario {
	return Scenario{
		Days:            90,
		PPFD:            350.0,
		PhotoperiodH:    12.0,
		CO2PPM:          800.0,
		TargetTempC:     18.0,
		InitialLeafDryG: 1.0,
		GroundAreaM2:    1.0,
	}
}

// Result holds the complete day-indexed time series of one run plus the
// derived series and scalars. All slices have length Days+1; index 0 is the
// initial condition. The engine keeps no reference after returning it, but
// callers that reuse a Result must not mutate the slices in place.
type Result struct {
	Day          []int     // 0..Days
	ThermalTime  []float64 // accumulated °C·day above base temperature
	LeafDry      []float64 // g
	StemDry      []float64 // g
	TuberDry     []float64 // g
	FreshTotal   []float64 // whole-plant fresh mass, g
	TuberFresh   []float64 // tuber fresh mass, g
	ChamberTemp  []float64 // °C
	CumEnergyKWh []float64 // cumulative electrical energy
	DLI          float64   // daily light integral, mol·m⁻²·day⁻¹ (scalar, same every day)
}

// Summary condenses a completed run into the headline numbers.
type Summary struct {
	Days          int
	TuberFreshG   float64
	TotalFreshG   float64
	EnergyKWh     float64
	ThermalTime   float64
	DLI           float64
	YieldPerKWh   float64 // final tuber fresh mass per kWh consumed
	FinalChamberC float64
	PeakChamberC  float64
}

// Summary computes the run summary from the final samples.
func (r *Result) Summary() Summary {
	last := len(r.Day) - 1
	s := Summary{
		Days:          r.Day[last],
		TuberFreshG:   r.TuberFresh[last],
		TotalFreshG:   r.FreshTotal[last],
		EnergyKWh:     r.CumEnergyKWh[last],
		ThermalTime:   r.ThermalTime[last],
		DLI:           r.DLI,
		FinalChamberC: r.ChamberTemp[last],
	}
	for _, c := range r.ChamberTemp {
		if c > s.PeakChamberC {
			s.PeakChamberC = c
		}
	}
	if s.EnergyKWh > 0 {
		s.YieldPerKWh = s.TuberFreshG / s.EnergyKWh
	}
	return s
}
