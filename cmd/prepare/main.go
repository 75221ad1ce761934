package main

import (
	"flag"
	"log"

	"github.com/route-assist/app/config"
	"github.com/route-assist/internal/pipeline"
	"github.com/route-assist/internal/store"
	"go.uber.org/zap"
)

// prepare is the one-shot batch step: it reads the raw delivery export,
// drops subtotal and incomplete rows, deduplicates repeated stops, orders
// each route by time of day and writes the finalized table the serving
// process loads.
func main() {
	input := flag.String("input", "data/db.csv", "raw delivery export (route_id, raw_address, date, time)")
	output := flag.String("output", "data/deliveries.csv", "finalized table destination")
	configPath := flag.String("config", "config/routes.yaml", "domain config file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	defer logger.Sync()

	if err := config.Load(*configPath); err != nil {
		logger.Fatal("Failed to load domain config", zap.Error(err))
	}

	raw, err := store.LoadRaw(*input)
	if err != nil {
		logger.Fatal("Failed to read raw table", zap.Error(err))
	}

	filtered := pipeline.FilterRows(raw, config.C.Pipeline.SubtotalMarker)
	kept, duplicates := pipeline.Dedup(filtered)
	final := pipeline.Sequence(kept, config.C.RouteNames)

	if err := store.Save(*output, final); err != nil {
		logger.Fatal("Failed to write finalized table", zap.Error(err))
	}

	routesSeen := make(map[string]bool)
	for _, rec := range final {
		routesSeen[rec.RouteID] = true
	}

	logger.Info("Preparation finished",
		zap.String("input", *input),
		zap.String("output", *output),
		zap.Int("rows_in", len(raw)),
		zap.Int("rows_filtered", len(raw)-len(filtered)),
		zap.Int("duplicates_removed", duplicates),
		zap.Int("rows_out", len(final)),
		zap.Int("routes", len(routesSeen)))
}
