package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/alexivanou/worldradio-api/internal/config"
	"github.com/alexivanou/worldradio-api/internal/database"
	"github.com/alexivanou/worldradio-api/internal/model"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*Container, func()) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	cfg := config.DBConfig{
		Type: config.DBTypeMemory,
		Name: fmt.Sprintf("testdb_%d", rng.Int()),
	}
	db, err := database.Connect(context.Background(), cfg)
	require.NoError(t, err)

	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	require.NoError(t, err)

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations/sqlite",
		"sqlite3",
		driver,
	)
	require.NoError(t, err)
	err = m.Up()
	require.NoError(t, err)

	repos := NewRepositories(db, config.DBTypeMemory)

	cleanup := func() {
		db.Close()
	}

	return repos, cleanup
}

func testFavorite(user, station string) model.Favorite {
	return model.Favorite{
		UserID:      user,
		StationUUID: station,
		StationName: "Station " + station,
		Country:     "Kenya",
		AddedAt:     time.Now().UTC(),
	}
}

func TestFavoritesRepository_InsertIdempotent(t *testing.T) {
	repos, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	created, err := repos.Favorites.Insert(ctx, testFavorite("demo_user", "uuid-1"))
	require.NoError(t, err)
	assert.True(t, created)

	// Same pair again is a no-op
	created, err = repos.Favorites.Insert(ctx, testFavorite("demo_user", "uuid-1"))
	require.NoError(t, err)
	assert.False(t, created)

	// Same station for another user is a distinct pair
	created, err = repos.Favorites.Insert(ctx, testFavorite("other_user", "uuid-1"))
	require.NoError(t, err)
	assert.True(t, created)
}

func TestFavoritesRepository_ListByUser(t *testing.T) {
	repos, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	for _, uuid := range []string{"uuid-1", "uuid-2", "uuid-3"} {
		_, err := repos.Favorites.Insert(ctx, testFavorite("demo_user", uuid))
		require.NoError(t, err)
	}
	_, err := repos.Favorites.Insert(ctx, testFavorite("other_user", "uuid-9"))
	require.NoError(t, err)

	favorites, err := repos.Favorites.ListByUser(ctx, "demo_user")
	require.NoError(t, err)
	require.Len(t, favorites, 3)
	for _, fav := range favorites {
		assert.Equal(t, "demo_user", fav.UserID)
		assert.NotEmpty(t, fav.StationName)
	}

	favorites, err = repos.Favorites.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoritesRepository_Delete(t *testing.T) {
	repos, cleanup := setupRepo(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repos.Favorites.Insert(ctx, testFavorite("demo_user", "uuid-1"))
	require.NoError(t, err)

	deleted, err := repos.Favorites.Delete(ctx, "demo_user", "uuid-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	// Already gone
	deleted, err = repos.Favorites.Delete(ctx, "demo_user", "uuid-1")
	require.NoError(t, err)
	assert.False(t, deleted)

	favorites, err := repos.Favorites.ListByUser(ctx, "demo_user")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}
