package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ZHABODAV/fleet-list/internal/analysis"
	"github.com/ZHABODAV/fleet-list/internal/schedule"
	"github.com/ZHABODAV/fleet-list/internal/simulation"
)

var (
	itineraryHeader = []string{
		"vessel",
		"leg",
		"from",
		"to",
		"departure",
		"arrival",
		"operation_end",
		"transit_days",
		"operation_days",
	}
	tankHeader    = []string{"time", "vessel", "action", "level", "port"}
	summaryHeader = []string{"parameter", "value"}
)

func WriteItineraryCSV(w io.Writer, rows []schedule.ItineraryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(itineraryHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Vessel,
			r.Leg,
			r.From,
			r.To,
			r.Departure,
			r.Arrival,
			r.OperationEnd,
			fmtFloat(r.TransitDays),
			fmtFloat(r.OperationDays),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteTankCSV(w io.Writer, rows []simulation.TankRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tankHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			fmtTime(r.Time),
			r.Vessel,
			r.Action,
			fmtFloat(r.Level),
			r.Port,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes the summary as parameter/value pairs.
func WriteSummaryCSV(w io.Writer, s analysis.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return err
	}
	for _, rec := range SummaryRows(s) {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SummaryRows lists the summary parameters in report order.
func SummaryRows(s analysis.Summary) [][]string {
	return [][]string{
		{"inflow_vessel_count", strconv.Itoa(s.InflowVessels)},
		{"outflow_vessel_count", strconv.Itoa(s.OutflowVessels)},
		{"inflow_capacity", fmtFloat(s.InflowCapacity)},
		{"outflow_capacity", fmtFloat(s.OutflowCapacity)},
		{"max_level", fmtFloat(s.MaxLevel)},
		{"min_level", fmtFloat(s.MinLevel)},
		{"buffer_capacity", fmtFloat(s.BufferCapacity)},
		{"inflow_start_date", s.InflowStart.Format(schedule.DateLayout)},
		{"outflow_start_date", s.OutflowStart.Format(schedule.DateLayout)},
		{"cycle_length_days", strconv.Itoa(s.CycleDays)},
	}
}

// WriteFile creates path (and its directory) and hands the file to write.
func WriteFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// FileName builds the download name for a table, e.g. fleet_tank_20240410_120000.csv.
func FileName(table string, at time.Time) string {
	return fmt.Sprintf("fleet_%s_%s.csv", table, at.Format("20060102_150405"))
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(simulation.TimeLayout)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
