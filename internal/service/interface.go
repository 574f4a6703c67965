package service

import (
	"context"

	"github.com/alexivanou/worldradio-api/internal/model"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	AggregateStations(ctx context.Context, req model.StationsRequest) ([]model.Station, error)
	AddFavorite(ctx context.Context, req model.AddFavoriteRequest) (*model.AddFavoriteResponse, error)
	ListFavorites(ctx context.Context, userID string) (*model.FavoritesResponse, error)
	RemoveFavorite(ctx context.Context, userID, stationUUID string) (bool, error)
	Countries() model.CountriesResponse
}
