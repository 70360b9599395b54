// Package export writes completed simulation results to CSV, JSON, SVG and
// PNG on request. Nothing here persists runs implicitly; every writer is fed
// an in-memory result and a caller-chosen destination.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/cropsim/internal/sim"
)

// CSVHeader is the column set of the exported table, one row per day.
var CSVHeader = []string{
	"day",
	"thermal_time",
	"leaf_dry_g",
	"stem_dry_g",
	"tuber_dry_g",
	"fresh_total_g",
	"tuber_fresh_g",
	"chamber_temp_c",
	"cum_energy_kwh",
}

// WriteCSV writes the day-indexed series of a result as CSV.
func WriteCSV(w io.Writer, res *sim.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for i := range res.Day {
		row := []string{
			strconv.Itoa(res.Day[i]),
			fmtF(res.ThermalTime[i]),
			fmtF(res.LeafDry[i]),
			fmtF(res.StemDry[i]),
			fmtF(res.TuberDry[i]),
			fmtF(res.FreshTotal[i]),
			fmtF(res.TuberFresh[i]),
			fmtF(res.ChamberTemp[i]),
			fmtF(res.CumEnergyKWh[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVFile writes the result to the named file, or to stdout when path is "-".
func CSVFile(path string, res *sim.Result) error {
	if path == "-" {
		return WriteCSV(os.Stdout, res)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, res)
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
