package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ZHABODAV/fleet-list/internal/analysis"
	"github.com/ZHABODAV/fleet-list/internal/config"
	"github.com/ZHABODAV/fleet-list/internal/export"
	"github.com/ZHABODAV/fleet-list/internal/schedule"
	"github.com/ZHABODAV/fleet-list/internal/simulation"
)

// Demo:
// - Build the reference river/sea scenario (or load one via --config)
// - Schedule both fleets and replay the tank
// - Print itineraries, the tank log and the summary to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	n := flag.Int("n", 20, "Number of tank log rows to print")
	outCSV := flag.String("out", "", "Optional path to write the tank log CSV (e.g. results/tank_log.csv)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		cfg = *loaded
	}

	inflow, err := cfg.Inflow.Scheduler("inflow")
	if err != nil {
		panic(err)
	}
	outflow, err := cfg.Outflow.Scheduler("outflow")
	if err != nil {
		panic(err)
	}

	result, err := simulation.New().Run(cfg.Buffer.Capacity, inflow, outflow)
	if err != nil {
		panic(err)
	}

	printItinerary("Inflow", inflow)
	printItinerary("Outflow", outflow)

	fmt.Printf("Tank at %s, capacity %g\n", result.Port, result.Capacity)
	for i := 0; i < min(*n, len(result.Log)); i++ {
		e := result.Log[i]
		fmt.Printf(
			"%s  %-10s %-30s level=%6s→%-6s %s\n",
			e.Time.Format(simulation.TimeLayout),
			e.Vessel,
			e.Description,
			e.LevelBefore,
			e.LevelAfter,
			string(e.Clamp),
		)
	}

	if *outCSV != "" {
		err := export.WriteFile(*outCSV, func(w io.Writer) error {
			return export.WriteTankCSV(w, result.Table())
		})
		if err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	summary, err := analysis.Summarize(inflow, outflow, result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "summary: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	for _, row := range export.SummaryRows(summary) {
		fmt.Printf("%-22s %s\n", row[0], row[1])
	}
}

func printItinerary(title string, s *schedule.Scheduler) {
	fmt.Printf("%s route %q (%d vessels, capacity %g)\n", title, s.Route.Name, s.Len(), s.Route.VesselCapacity)
	for _, r := range s.Table() {
		fmt.Printf("  %-10s %-12s %s→%s  dep %s  arr %s  ops until %s\n",
			r.Vessel, r.Leg, r.From, r.To, r.Departure, r.Arrival, r.OperationEnd)
	}
	fmt.Println()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
