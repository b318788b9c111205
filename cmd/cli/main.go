package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZHABODAV/fleet-list/internal/analysis"
	"github.com/ZHABODAV/fleet-list/internal/config"
	"github.com/ZHABODAV/fleet-list/internal/export"
	"github.com/ZHABODAV/fleet-list/internal/simulation"

	"github.com/go-kit/kit/log"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	switch os.Args[1] {
	case "plan":
		cmdPlan(logger, os.Args[2:])
	case "fleets":
		cmdFleets(logger, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli plan --config examples/config.yaml --out results")
	fmt.Println("  cli fleets --dir examples/fleets")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - plan writes inflow_itinerary.csv, outflow_itinerary.csv, tank_log.csv and summary.csv")
	fmt.Println("  - without --config, plan runs the built-in river/sea scenario")
	fmt.Println("  - fleets lists the preset fleet files a config can reference with file:")
}

func cmdPlan(logger log.Logger, args []string) {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outDir := fs.String("out", "results", "Output directory for CSV tables")
	_ = fs.Parse(args)

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fatal(logger, "load config", err)
		}
		cfg = *loaded
	} else if err := cfg.Validate(); err != nil {
		fatal(logger, "validate defaults", err)
	}

	inflow, err := cfg.Inflow.Scheduler("inflow")
	if err != nil {
		fatal(logger, "schedule inflow", err)
	}
	outflow, err := cfg.Outflow.Scheduler("outflow")
	if err != nil {
		fatal(logger, "schedule outflow", err)
	}

	res, err := simulation.New().Run(cfg.Buffer.Capacity, inflow, outflow)
	if err != nil {
		fatal(logger, "simulate", err)
	}
	summary, err := analysis.Summarize(inflow, outflow, res)
	if err != nil {
		fatal(logger, "summarize", err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"inflow_itinerary.csv", func(w io.Writer) error { return export.WriteItineraryCSV(w, inflow.Table()) }},
		{"outflow_itinerary.csv", func(w io.Writer) error { return export.WriteItineraryCSV(w, outflow.Table()) }},
		{"tank_log.csv", func(w io.Writer) error { return export.WriteTankCSV(w, res.Table()) }},
		{"summary.csv", func(w io.Writer) error { return export.WriteSummaryCSV(w, summary) }},
	}
	for _, f := range files {
		path := filepath.Join(*outDir, f.name)
		if err := export.WriteFile(path, f.write); err != nil {
			fatal(logger, "export", err)
		}
		logger.Log("wrote", path)
	}

	for _, row := range export.SummaryRows(summary) {
		fmt.Printf("%-22s %s\n", row[0], row[1])
	}
	d := res.Diagnostics
	fmt.Printf("Unloaded=%s Loaded=%s Final level=%s\n", d.TotalUnloaded, d.TotalLoaded, res.FinalLevel)
	if d.OverflowEvents > 0 || d.ShortageEvents > 0 {
		fmt.Printf("Overflow events=%d (discarded %s) Shortage events=%d (unmet %s)\n",
			d.OverflowEvents, d.DiscardedVolume, d.ShortageEvents, d.UnmetVolume)
	}
}

func cmdFleets(logger log.Logger, args []string) {
	fs := flag.NewFlagSet("fleets", flag.ExitOnError)
	dir := fs.String("dir", "examples/fleets", "Directory of preset fleet YAML files")
	_ = fs.Parse(args)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		fatal(logger, "read fleet dir", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	fmt.Printf("%-16s %-20s %-8s %-9s %-9s %s\n", "file", "name", "vessels", "interval", "capacity", "ports")
	for _, name := range names {
		f, err := config.LoadFleetFile(filepath.Join(*dir, name))
		if err != nil {
			logger.Log("file", name, "err", err)
			continue
		}
		route, err := f.Route(strings.TrimSuffix(name, ".yaml"))
		ports := "-"
		if err == nil {
			ports = strings.Join(route.Ports(), ",")
		}
		fmt.Printf("%-16s %-20s %-8d %-9g %-9g %s\n", name, f.Name, f.Vessels, f.IntervalDays, f.Capacity, ports)
	}
}

func fatal(logger log.Logger, during string, err error) {
	logger.Log("during", during, "err", err)
	os.Exit(1)
}
