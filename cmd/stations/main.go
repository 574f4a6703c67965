package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/alexivanou/worldradio-api/internal/config"
	"github.com/alexivanou/worldradio-api/internal/model"
	"github.com/alexivanou/worldradio-api/internal/radiobrowser"
	"github.com/alexivanou/worldradio-api/internal/service"
	"go.uber.org/zap"
)

// Runs one aggregation query against the live directory and prints the
// result. Useful for checking region tables and upstream health without
// starting the server.
func main() {
	var (
		regionName = flag.String("region", "all", "Region to aggregate: all, american, or african")
		limit      = flag.Int("limit", 0, "Maximum stations to return (0 uses the configured default)")
		search     = flag.String("search", "", "Optional station name filter")
		format     = flag.String("format", "text", "Output format: text or json")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if *limit <= 0 {
		*limit = cfg.Radio.DefaultLimit
	}

	directory := radiobrowser.NewClient(cfg.Radio)
	svc := service.NewService(directory, nil, cfg.Radio, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Radio.Timeout)
	defer cancel()

	stations, err := svc.AggregateStations(ctx, model.StationsRequest{
		Region: *regionName,
		Limit:  *limit,
		Search: *search,
	})
	if err != nil {
		logger.Fatal("Aggregation failed", zap.Error(err))
	}

	switch *format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(stations); err != nil {
			logger.Fatal("Failed to encode stations", zap.Error(err))
		}
	case "text":
		fmt.Printf("%-40s %-15s %8s  %s\n", "NAME", "COUNTRY", "CLICKS", "STREAM")
		for _, s := range stations {
			name := s.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			fmt.Printf("%-40s %-15s %8d  %s\n", name, s.Country, s.ClickCount, s.URLResolved)
		}
		fmt.Printf("\n%d stations (region=%s)\n", len(stations), *regionName)
	default:
		logger.Fatal("Unknown output format", zap.String("format", *format))
	}
}
