package crop

import "math"

// MJPerMolPAR converts moles of PAR photons to megajoules of energy.
const MJPerMolPAR = 0.219

// TuberFreshRatio is the dry matter fraction of tuber tissue. It is lower
// than the whole-plant DryToFreshRatio: tubers are wetter than average
// tissue.
const TuberFreshRatio = 0.22

// Tuber partitioning: a low constant allocation before tuber initiation
// jumps to a high one at the threshold. Short days push the fraction up by
// as much as photoperiodBonus, ramping in linearly below neutralPhotoperiodH
// over photoperiodBandH hours.
const (
	partitionPreInit    = 0.05
	partitionPostInit   = 0.4
	partitionFloor      = 0.05
	partitionCeil       = 0.9
	neutralPhotoperiodH = 16.0
	photoperiodBandH    = 6.0
	photoperiodBonus    = 0.5
)

const epsilon = 1e-9

// DLIFromPPFD converts an instantaneous photon flux density (μmol·m⁻²·s⁻¹)
// and a photoperiod (hours of light per day) into the daily light integral
// in mol photons per m² per day.
func DLIFromPPFD(ppfd, photoperiodH float64) float64 {
	return ppfd * photoperiodH * 3600.0 / 1e6
}

// MolPARToMJ converts moles of PAR photons to megajoules of energy.
func MolPARToMJ(molPAR float64) float64 {
	return molPAR * MJPerMolPAR
}

// TempModifier is the triangular temperature response over the cardinal
// temperatures: 0 at or beyond base and max, exactly 1 at the optimum, and
// linear ramps in between.
func TempModifier(tempC, baseC, optC, maxC float64) float64 {
	if tempC <= baseC || tempC >= maxC {
		return 0.0
	}
	if tempC == optC {
		return 1.0
	}
	if tempC < optC {
		return (tempC - baseC) / (optC - baseC)
	}
	return (maxC - tempC) / (maxC - optC)
}

// CO2Modifier is the saturating CO2 response on photosynthesis. It is 0 for
// non-positive concentrations, 0.5 at or below the reference point, and
// saturates at 1 from the saturation point on.
func CO2Modifier(co2PPM, refPPM, satPPM float64) float64 {
	if co2PPM <= 0 {
		return 0.0
	}
	x := (co2PPM - refPPM) / (satPPM - refPPM + epsilon)
	return clamp(0.5+0.5*clamp(x, 0.0, 1.0), 0.0, 1.0)
}

// CanopyInterception estimates the fraction of incoming light intercepted by
// the canopy via Beer-Lambert extinction over the leaf area index. It is
// monotonically increasing in leaf mass and asymptotes to 1.
func (p GrowthParams) CanopyInterception(leafDryG, areaM2 float64) float64 {
	lai := leafDryG * p.SLA / math.Max(areaM2, epsilon)
	return clamp(1.0-math.Exp(-p.KExtinction*lai), 0.0, 1.0)
}

// TuberPartition returns the fraction of new biomass allocated to tubers for
// the given accumulated thermal time and photoperiod. The jump at the
// tuber-initiation threshold is a deliberate step, not a ramp.
func (p GrowthParams) TuberPartition(tt, photoperiodH float64) float64 {
	base := partitionPreInit
	if tt >= p.TTTuberInit {
		base = partitionPostInit
	}
	photof := clamp((neutralPhotoperiodH-photoperiodH)/photoperiodBandH, 0.0, 1.0)
	return clamp(base+photoperiodBonus*photof, partitionFloor, partitionCeil)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
