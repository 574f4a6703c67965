package repository

import (
	"context"

	"github.com/alexivanou/worldradio-api/internal/config"
	"github.com/alexivanou/worldradio-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// listLimit bounds a single favorites listing
const listLimit = 100

// FavoritesRepository defines operations for saved stations
type FavoritesRepository interface {
	// Insert stores the favorite unless the (user, station) pair already
	// exists. Returns true when a row was created.
	Insert(ctx context.Context, fav model.Favorite) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]model.Favorite, error)
	// Delete returns true when a row existed and was removed
	Delete(ctx context.Context, userID, stationUUID string) (bool, error)
}

// Container holds all repositories
type Container struct {
	Favorites FavoritesRepository
}

// NewRepositories creates repository implementations based on DB type
func NewRepositories(db *sqlx.DB, dbType config.DBType) *Container {
	if dbType == config.DBTypePostgreSQL {
		return &Container{
			Favorites: &pgFavoritesRepository{db: db},
		}
	}

	// Default to SQLite
	return &Container{
		Favorites: &sqliteFavoritesRepository{db: db},
	}
}
