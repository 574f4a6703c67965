package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexivanou/worldradio-api/internal/model"
)

// AddFavorite saves a station for a user. Adding a pair that already exists
// is a no-op reported through AlreadyExists.
func (s *Service) AddFavorite(ctx context.Context, req model.AddFavoriteRequest) (*model.AddFavoriteResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = defaultUserID
	}

	fav := model.Favorite{
		UserID:      userID,
		StationUUID: req.StationUUID,
		StationName: req.StationName,
		Country:     req.Country,
		AddedAt:     time.Now().UTC(),
	}

	created, err := s.favorites.Insert(ctx, fav)
	if err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	if !created {
		return &model.AddFavoriteResponse{
			Message:       "Station already in favorites",
			AlreadyExists: true,
		}, nil
	}
	return &model.AddFavoriteResponse{
		Message:  "Station added to favorites",
		Favorite: &fav,
	}, nil
}

// ListFavorites returns the user's saved stations
func (s *Service) ListFavorites(ctx context.Context, userID string) (*model.FavoritesResponse, error) {
	if userID == "" {
		userID = defaultUserID
	}

	favorites, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	if favorites == nil {
		favorites = []model.Favorite{}
	}
	return &model.FavoritesResponse{Favorites: favorites, Count: len(favorites)}, nil
}

// RemoveFavorite deletes a saved station. Returns false when the pair was not
// saved in the first place.
func (s *Service) RemoveFavorite(ctx context.Context, userID, stationUUID string) (bool, error) {
	if userID == "" {
		userID = defaultUserID
	}

	deleted, err := s.favorites.Delete(ctx, userID, stationUUID)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return deleted, nil
}
