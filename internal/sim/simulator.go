// Package sim owns the day-stepped integration loop coupling the potato
// crop model to the chamber energy balance.
package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/cropsim/internal/chamber"
	"github.com/san-kum/cropsim/internal/crop"
)

// Leaf share of the non-tuber biomass increment: more leaf early on, even
// split once tubers have initiated.
const (
	leafBiasVegetative = 0.7
	leafBiasBulking    = 0.5
)

const epsilon = 1e-9

// Simulator runs deterministic day-stepped growth simulations for a fixed
// pair of parameter records. It carries no per-run state: every Run
// allocates its own series, so a single Simulator may be shared across
// goroutines.
type Simulator struct {
	growth  crop.GrowthParams
	chamber chamber.Params
}

func New(growth crop.GrowthParams, ch chamber.Params) *Simulator {
	return &Simulator{growth: growth, chamber: ch}
}

// snapshot is the full model state at the start of one day. Each step reads
// only a snapshot and returns the next one, so nothing can accidentally mix
// current-day and next-day values.
type snapshot struct {
	LeafDry     float64
	StemDry     float64
	TuberDry    float64
	ThermalTime float64
	ChamberTemp float64
	EnergyKWh   float64
}

// Run executes exactly scn.Days daily steps and returns the populated
// series (Days+1 samples; index 0 is the initial condition). The only
// rejected input is a negative day count; out-of-range parameters fail soft
// through the clamps and epsilon floors in the response functions.
func (s *Simulator) Run(scn Scenario) (*Result, error) {
	if scn.Days < 0 {
		return nil, fmt.Errorf("days must be non-negative, got %d", scn.Days)
	}

	n := scn.Days + 1
	res := &Result{
		Day:          make([]int, n),
		ThermalTime:  make([]float64, n),
		LeafDry:      make([]float64, n),
		StemDry:      make([]float64, n),
		TuberDry:     make([]float64, n),
		FreshTotal:   make([]float64, n),
		TuberFresh:   make([]float64, n),
		ChamberTemp:  make([]float64, n),
		CumEnergyKWh: make([]float64, n),
	}

	dli := crop.DLIFromPPFD(scn.PPFD, scn.PhotoperiodH)
	parMJ := crop.MolPARToMJ(dli)
	dailyKWh := s.chamber.DailyEnergyKWh(scn.PhotoperiodH)

	cur := snapshot{
		LeafDry:     scn.InitialLeafDryG,
		ChamberTemp: scn.TargetTempC,
	}
	res.record(0, cur)

	for t := 0; t < scn.Days; t++ {
		cur = s.step(cur, scn, parMJ, dailyKWh)
		res.record(t+1, cur)
	}

	for i := 0; i < n; i++ {
		totalDry := res.LeafDry[i] + res.StemDry[i] + res.TuberDry[i]
		res.FreshTotal[i] = totalDry / math.Max(s.growth.DryToFreshRatio, epsilon)
		res.TuberFresh[i] = res.TuberDry[i] / math.Max(crop.TuberFreshRatio, epsilon)
	}
	res.DLI = dli

	return res, nil
}

// step advances one day. Every response function reads the day-t snapshot;
// the returned snapshot is day t+1.
func (s *Simulator) step(cur snapshot, scn Scenario, parMJ, dailyKWh float64) snapshot {
	gp := s.growth

	fT := crop.TempModifier(cur.ChamberTemp, gp.BaseTempC, gp.OptTempC, gp.MaxTempC)
	dTT := math.Max(0.0, cur.ChamberTemp-gp.BaseTempC)
	fI := gp.CanopyInterception(cur.LeafDry, scn.GroundAreaM2)
	fC := crop.CO2Modifier(scn.CO2PPM, gp.CO2RefPPM, gp.CO2SatPPM)

	gross := gp.LUE * (parMJ * fI) * fT * fC
	maintenance := gp.MaintFracPerDay * (cur.LeafDry + cur.StemDry + cur.TuberDry)
	net := math.Max(gross-maintenance, 0.0)

	fracTuber := gp.TuberPartition(cur.ThermalTime, scn.PhotoperiodH)
	leafBias := leafBiasVegetative
	if cur.ThermalTime >= gp.TTTuberInit {
		leafBias = leafBiasBulking
	}

	toTuber := net * fracTuber
	toLeafStem := net * (1.0 - fracTuber)
	toLeaf := toLeafStem * leafBias
	toStem := toLeafStem * (1.0 - leafBias)

	return snapshot{
		LeafDry:     math.Max(cur.LeafDry+toLeaf, 0.0),
		StemDry:     math.Max(cur.StemDry+toStem, 0.0),
		TuberDry:    math.Max(cur.TuberDry+toTuber, 0.0),
		ThermalTime: cur.ThermalTime + dTT,
		ChamberTemp: s.chamber.NextTemp(cur.ChamberTemp, scn.TargetTempC, 1.0),
		EnergyKWh:   cur.EnergyKWh + dailyKWh,
	}
}

func (r *Result) record(i int, st snapshot) {
	r.Day[i] = i
	r.ThermalTime[i] = st.ThermalTime
	r.LeafDry[i] = st.LeafDry
	r.StemDry[i] = st.StemDry
	r.TuberDry[i] = st.TuberDry
	r.ChamberTemp[i] = st.ChamberTemp
	r.CumEnergyKWh[i] = st.EnergyKWh
}
