package crop

// GrowthParams holds the biological constants controlling potato crop
// growth. Zero value is not useful; start from DefaultGrowthParams.
type GrowthParams struct {
	LUE             float64 // light-use efficiency, g dry biomass per MJ absorbed PAR
	PARFraction     float64 // fraction of incoming radiation that is PAR
	SLA             float64 // specific leaf area, m² per g dry
	KExtinction     float64 // Beer-Lambert canopy extinction coefficient
	DryToFreshRatio float64 // whole-plant dry matter fraction

	// Cardinal temperatures (°C). Growth stops at or beyond base and max.
	BaseTempC float64
	OptTempC  float64
	MaxTempC  float64

	// CO2 response anchors (ppm).
	CO2RefPPM float64
	CO2SatPPM float64

	// Phenology thresholds in accumulated thermal time (°C·day).
	TTEmergence float64
	TTTuberInit float64
	TTMaturity  float64

	// Fraction of total dry biomass respired per day for maintenance.
	MaintFracPerDay float64
}

// DefaultGrowthParams returns the calibration used for the reference potato
// cultivar.
func DefaultGrowthParams() GrowthParams {
	return GrowthParams{
		LUE:             1.3,
		PARFraction:     0.48,
		SLA:             0.02,
		KExtinction:     0.65,
		DryToFreshRatio: 0.20,
		BaseTempC:       7.0,
		OptTempC:        18.0,
		MaxTempC:        30.0,
		CO2RefPPM:       400.0,
		CO2SatPPM:       1200.0,
		TTEmergence:     120.0,
		TTTuberInit:     350.0,
		TTMaturity:      1500.0,
		MaintFracPerDay: 0.003,
	}
}

// Stage is a phenological development stage derived from accumulated
// thermal time.
type Stage int

const (
	StagePreEmergence Stage = iota
	StageVegetative
	StageTuberBulking
	StageMature
)

func (s Stage) String() string {
	switch s {
	case StagePreEmergence:
		return "pre-emergence"
	case StageVegetative:
		return "vegetative"
	case StageTuberBulking:
		return "tuber bulking"
	case StageMature:
		return "mature"
	}
	return "unknown"
}

// Stage maps accumulated thermal time onto the crop's development stage
// using the phenology thresholds.
func (p GrowthParams) Stage(tt float64) Stage {
	switch {
	case tt < p.TTEmergence:
		return StagePreEmergence
	case tt < p.TTTuberInit:
		return StageVegetative
	case tt < p.TTMaturity:
		return StageTuberBulking
	}
	return StageMature
}
