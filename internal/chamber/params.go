// Package chamber models the growth chamber's first-order heat and
// electrical energy balance.
package chamber

import "math"

// wattsToKJDay converts a continuous electrical load in watts to kJ per day.
const wattsToKJDay = 86400.0 / 1000.0

// Params holds the physical constants of the growth chamber. Zero value is
// not useful; start from DefaultParams.
type Params struct {
	HeatCapacityKJK      float64 // total chamber thermal mass, kJ/K
	HeatLossKJDayK       float64 // loss coefficient to ambient, kJ/day per K difference
	LEDPowerW            float64 // LED lighting power (all of it ends up as heat)
	OtherPowerW          float64 // fans, pumps and other continuous loads
	CoolingCapacityKJDay float64 // maximum cooling the system can deliver per day
	AmbientTempC         float64 // surrounding room temperature
}

// DefaultParams returns the reference chamber hardware.
func DefaultParams() Params {
	return Params{
		HeatCapacityKJK:      1200.0,
		HeatLossKJDayK:       650.0,
		LEDPowerW:            400.0,
		OtherPowerW:          80.0,
		CoolingCapacityKJDay: 25000.0,
		AmbientTempC:         20.0,
	}
}

// HeatInputKJDay is the total electrical heat dissipated into the chamber
// per day.
func (p Params) HeatInputKJDay() float64 {
	return (p.LEDPowerW + p.OtherPowerW) * wattsToKJDay
}

// NextTemp advances the chamber temperature by one step of the energy
// balance. Heat flows to ambient only when the chamber is warmer than the
// room, and cooling engages only above the target: it draws whatever is
// needed to pull the excess back to target within the step, capped by the
// rated capacity. There is no active heating below target; the only heat
// sources are the LED and other electrical loads.
func (p Params) NextTemp(currentC, targetC, dtDays float64) float64 {
	qIn := p.HeatInputKJDay()
	qLoss := p.HeatLossKJDayK * math.Max(currentC-p.AmbientTempC, 0.0)

	qCool := 0.0
	if currentC > targetC {
		qCool = math.Min(p.CoolingCapacityKJDay, (currentC-targetC)*p.HeatCapacityKJK/dtDays)
	}

	dT := dtDays * (qIn - qLoss - qCool) / p.HeatCapacityKJK
	return currentC + dT
}

// DailyEnergyKWh is the fixed electrical draw per simulated day: the LED
// runs for the photoperiod, everything else runs around the clock. It is
// independent of the thermal state.
func (p Params) DailyEnergyKWh(photoperiodH float64) float64 {
	return (p.LEDPowerW*photoperiodH + p.OtherPowerW*24.0) / 1000.0
}

// EquilibriumTempC is the temperature at which heat input balances loss to
// ambient with no cooling engaged. Useful as a sanity bound: an uncooled
// chamber warmer than ambient converges here.
func (p Params) EquilibriumTempC() float64 {
	if p.HeatLossKJDayK <= 0 {
		return math.Inf(1)
	}
	return p.AmbientTempC + p.HeatInputKJDay()/p.HeatLossKJDayK
}
