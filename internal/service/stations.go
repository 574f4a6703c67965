package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/alexivanou/worldradio-api/internal/model"
	"github.com/alexivanou/worldradio-api/internal/region"
	"go.uber.org/zap"
)

// ErrAllSourcesUnavailable is returned when every per-country directory query
// failed and no partial result could be assembled.
var ErrAllSourcesUnavailable = errors.New("all station sources unavailable")

// AggregateStations fans out one directory query per country in the region,
// merges the per-country results and returns up to req.Limit stations ordered
// by popularity.
//
// A single country failing only removes that country's contribution; the call
// fails as a whole with ErrAllSourcesUnavailable only when no country
// responded. Ordering is deterministic for fixed inputs: within equal click
// counts, records keep country-list order, then upstream order.
func (s *Service) AggregateStations(ctx context.Context, req model.StationsRequest) ([]model.Station, error) {
	countries, err := region.Resolve(req.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve region: %w", err)
	}
	if len(countries) == 0 {
		return nil, ErrAllSourcesUnavailable
	}
	if req.Limit <= 0 {
		return []model.Station{}, nil
	}

	// Fan-out ceiling keeps worst-case latency bounded for wide regions
	if len(countries) > s.cfg.MaxCountries {
		countries = countries[:s.cfg.MaxCountries]
	}

	perCountry := req.Limit / len(countries)
	if perCountry < s.cfg.MinPerCountry {
		perCountry = s.cfg.MinPerCountry
	}

	// One slot per country so the merge happens in country-list order, not
	// in goroutine completion order.
	results := make([][]model.Station, len(countries))
	failures := make([]error, len(countries))

	var wg sync.WaitGroup
	for i, country := range countries {
		wg.Add(1)
		go func(i int, country string) {
			defer wg.Done()
			stations, err := s.fetcher.Search(ctx, country, req.Search, perCountry)
			if err != nil {
				failures[i] = err
				return
			}
			results[i] = stations
		}(i, country)
	}
	wg.Wait()

	pool := make([]model.Station, 0, len(countries)*s.cfg.PerSourceCap)
	failed := 0
	for i, stations := range results {
		if failures[i] != nil {
			failed++
			s.logger.Warn("station source failed",
				zap.String("country", countries[i]),
				zap.Error(failures[i]),
			)
			continue
		}
		kept := 0
		for _, station := range stations {
			if !station.Valid() {
				continue
			}
			pool = append(pool, station)
			kept++
			if kept == s.cfg.PerSourceCap {
				break
			}
		}
	}

	if failed == len(countries) {
		return nil, fmt.Errorf("%w: %d countries failed", ErrAllSourcesUnavailable, failed)
	}

	sort.SliceStable(pool, func(a, b int) bool {
		return pool[a].ClickCount > pool[b].ClickCount
	})

	if len(pool) > req.Limit {
		pool = pool[:req.Limit]
	}
	return pool, nil
}
