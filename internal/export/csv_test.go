package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ZHABODAV/fleet-list/internal/analysis"
	"github.com/ZHABODAV/fleet-list/internal/schedule"
	"github.com/ZHABODAV/fleet-list/internal/simulation"
)

func readCSV(t *testing.T, b []byte) [][]string {
	t.Helper()
	recs, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	return recs
}

func TestWriteItineraryCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []schedule.ItineraryRow{{
		Vessel:        "River_1",
		Leg:           "River_A-B",
		From:          "PortA",
		To:            "PortB",
		Departure:     "2024-04-10",
		Arrival:       "2024-04-15",
		OperationEnd:  "2024-04-16",
		TransitDays:   5,
		OperationDays: 0.5,
	}}
	if err := WriteItineraryCSV(&buf, rows); err != nil {
		t.Fatalf("WriteItineraryCSV: %v", err)
	}
	recs := readCSV(t, buf.Bytes())
	if len(recs) != 2 {
		t.Fatalf("Expected header + 1 row, got %d", len(recs))
	}
	if strings.Join(recs[0], ",") != "vessel,leg,from,to,departure,arrival,operation_end,transit_days,operation_days" {
		t.Errorf("Unexpected header %v", recs[0])
	}
	if strings.Join(recs[1], ",") != "River_1,River_A-B,PortA,PortB,2024-04-10,2024-04-15,2024-04-16,5,0.5" {
		t.Errorf("Unexpected row %v", recs[1])
	}
}

func TestWriteTankCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []simulation.TankRow{{
		Time:   time.Date(2024, 4, 15, 12, 30, 0, 0, time.UTC),
		Vessel: "River_1",
		Action: "Unload inflow vessel (+30)",
		Level:  30,
		Port:   "PortB",
	}}
	if err := WriteTankCSV(&buf, rows); err != nil {
		t.Fatalf("WriteTankCSV: %v", err)
	}
	recs := readCSV(t, buf.Bytes())
	if strings.Join(recs[0], ",") != "time,vessel,action,level,port" {
		t.Errorf("Unexpected header %v", recs[0])
	}
	want := []string{"2024-04-15 12:30", "River_1", "Unload inflow vessel (+30)", "30", "PortB"}
	for i := range want {
		if recs[1][i] != want[i] {
			t.Errorf("column %d: expected %q, got %q", i, want[i], recs[1][i])
		}
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	s := analysis.Summary{
		InflowVessels:   3,
		OutflowVessels:  4,
		InflowCapacity:  30,
		OutflowCapacity: 25,
		MaxLevel:        90,
		MinLevel:        0,
		BufferCapacity:  100,
		InflowStart:     time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		OutflowStart:    time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
		CycleDays:       238,
	}
	if err := WriteSummaryCSV(&buf, s); err != nil {
		t.Fatalf("WriteSummaryCSV: %v", err)
	}
	recs := readCSV(t, buf.Bytes())
	want := [][]string{
		{"parameter", "value"},
		{"inflow_vessel_count", "3"},
		{"outflow_vessel_count", "4"},
		{"inflow_capacity", "30"},
		{"outflow_capacity", "25"},
		{"max_level", "90"},
		{"min_level", "0"},
		{"buffer_capacity", "100"},
		{"inflow_start_date", "2024-04-10"},
		{"outflow_start_date", "2024-11-20"},
		{"cycle_length_days", "238"},
	}
	if len(recs) != len(want) {
		t.Fatalf("Expected %d records, got %d", len(want), len(recs))
	}
	for i := range want {
		if recs[i][0] != want[i][0] || recs[i][1] != want[i][1] {
			t.Errorf("record %d: expected %v, got %v", i, want[i], recs[i])
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "summary.csv")
	err := WriteFile(path, func(w io.Writer) error {
		return WriteSummaryCSV(w, analysis.Summary{})
	})
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(raw), "parameter,value\n") {
		t.Errorf("Unexpected file contents %q", raw)
	}
}

func TestFileName(t *testing.T) {
	got := FileName("tank", time.Date(2024, 4, 10, 12, 0, 5, 0, time.UTC))
	if got != "fleet_tank_20240410_120005.csv" {
		t.Errorf("Unexpected file name %s", got)
	}
}
