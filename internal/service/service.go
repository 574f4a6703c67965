package service

import (
	"context"

	"github.com/alexivanou/worldradio-api/internal/config"
	"github.com/alexivanou/worldradio-api/internal/model"
	"github.com/alexivanou/worldradio-api/internal/region"
	"github.com/alexivanou/worldradio-api/internal/repository"
	"go.uber.org/zap"
)

const defaultUserID = "demo_user"

// StationFetcher queries an upstream station directory for one country.
// Implemented by radiobrowser.Client.
type StationFetcher interface {
	Search(ctx context.Context, country, nameFilter string, limit int) ([]model.Station, error)
}

// Service provides business logic for the API
type Service struct {
	fetcher   StationFetcher
	favorites repository.FavoritesRepository
	cfg       config.RadioConfig
	logger    *zap.Logger
}

// NewService creates a new service instance
func NewService(
	fetcher StationFetcher,
	favorites repository.FavoritesRepository,
	cfg config.RadioConfig,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fetcher:   fetcher,
		favorites: favorites,
		cfg:       cfg,
		logger:    logger,
	}
}

// Countries returns the region tables behind the named regions
func (s *Service) Countries() model.CountriesResponse {
	tables := region.Tables()
	return model.CountriesResponse{
		American: tables[region.American],
		African:  tables[region.African],
	}
}
