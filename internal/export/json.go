package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/cropsim/internal/sim"
)

// Data is the JSON export document: the full series keyed by name plus the
// run summary.
type Data struct {
	Days         []int       `json:"days"`
	ThermalTime  []float64   `json:"thermal_time"`
	LeafDryG     []float64   `json:"leaf_dry_g"`
	StemDryG     []float64   `json:"stem_dry_g"`
	TuberDryG    []float64   `json:"tuber_dry_g"`
	FreshTotalG  []float64   `json:"fresh_total_g"`
	TuberFreshG  []float64   `json:"tuber_fresh_g"`
	ChamberTempC []float64   `json:"chamber_temp_c"`
	CumEnergyKWh []float64   `json:"cum_energy_kwh"`
	DLIMolM2D    float64     `json:"dli_mol_m2_d"`
	Summary      sim.Summary `json:"summary"`
}

func toData(res *sim.Result) Data {
	return Data{
		Days:         res.Day,
		ThermalTime:  res.ThermalTime,
		LeafDryG:     res.LeafDry,
		StemDryG:     res.StemDry,
		TuberDryG:    res.TuberDry,
		FreshTotalG:  res.FreshTotal,
		TuberFreshG:  res.TuberFresh,
		ChamberTempC: res.ChamberTemp,
		CumEnergyKWh: res.CumEnergyKWh,
		DLIMolM2D:    res.DLI,
		Summary:      res.Summary(),
	}
}

// WriteJSON writes the result document with indentation.
func WriteJSON(w io.Writer, res *sim.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toData(res))
}

// JSONFile writes the result to the named file, or to stdout when path is "-".
func JSONFile(path string, res *sim.Result) error {
	if path == "-" {
		return WriteJSON(os.Stdout, res)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, res)
}
