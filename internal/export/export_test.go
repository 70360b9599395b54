package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/cropsim/internal/chamber"
	"github.com/san-kum/cropsim/internal/crop"
	"github.com/san-kum/cropsim/internal/sim"
)

func testResult(t *testing.T) *sim.Result {
	t.Helper()
	scn := sim.DefaultScenario()
	scn.Days = 10
	res, err := sim.New(crop.DefaultGrowthParams(), chamber.DefaultParams()).Run(scn)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return res
}

func TestWriteCSV(t *testing.T) {
	res := testResult(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back failed: %v", err)
	}

	if len(rows) != 12 { // header + 11 days
		t.Fatalf("expected 12 rows, got %d", len(rows))
	}
	for i, col := range CSVHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}
	if rows[1][0] != "0" || rows[11][0] != "10" {
		t.Errorf("day column wrong: first=%q last=%q", rows[1][0], rows[11][0])
	}
}

func TestWriteJSON(t *testing.T) {
	res := testResult(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, res); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var data Data
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(data.Days) != 11 {
		t.Errorf("expected 11 days, got %d", len(data.Days))
	}
	if data.DLIMolM2D != res.DLI {
		t.Errorf("dli = %v, want %v", data.DLIMolM2D, res.DLI)
	}
	if data.Summary.EnergyKWh != res.CumEnergyKWh[10] {
		t.Errorf("summary energy = %v, want %v", data.Summary.EnergyKWh, res.CumEnergyKWh[10])
	}
}

func TestCSVFile(t *testing.T) {
	res := testResult(t)
	path := filepath.Join(t.TempDir(), "run.csv")

	if err := CSVFile(path, res); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "day,thermal_time") {
		t.Errorf("unexpected file prefix: %q", string(data[:20]))
	}
}

func TestSeriesToSVG(t *testing.T) {
	res := testResult(t)

	svg := SeriesToSVG(res.TuberFresh, "tuber fresh", 800, 400, "#00ff00")
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "<path") {
		t.Error("svg missing expected elements")
	}
	if !strings.Contains(svg, "tuber fresh") {
		t.Error("svg missing title")
	}

	if SeriesToSVG([]float64{1.0}, "too short", 800, 400, "#fff") != "" {
		t.Error("expected empty output for a single sample")
	}
}

func TestPNGCharts(t *testing.T) {
	res := testResult(t)
	dir := t.TempDir()

	paths, err := PNGCharts(dir, res)
	if err != nil {
		t.Fatalf("charts failed: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 charts, got %d", len(paths))
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("missing chart %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("empty chart file %s", p)
		}
	}
}
