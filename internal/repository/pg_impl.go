package repository

import (
	"context"

	"github.com/alexivanou/worldradio-api/internal/model"
	"github.com/jmoiron/sqlx"
)

type pgFavoritesRepository struct {
	db *sqlx.DB
}

func (r *pgFavoritesRepository) Insert(ctx context.Context, fav model.Favorite) (bool, error) {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO favorites (user_id, station_uuid, station_name, country, added_at)
		VALUES (:user_id, :station_uuid, :station_name, :country, :added_at)
		ON CONFLICT (user_id, station_uuid) DO NOTHING`,
		fav)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *pgFavoritesRepository) ListByUser(ctx context.Context, userID string) ([]model.Favorite, error) {
	q := `
		SELECT user_id, station_uuid, station_name, country, added_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY added_at DESC, station_uuid
		LIMIT $2
	`
	var favorites []model.Favorite
	if err := r.db.SelectContext(ctx, &favorites, q, userID, listLimit); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *pgFavoritesRepository) Delete(ctx context.Context, userID, stationUUID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = $1 AND station_uuid = $2",
		userID, stationUUID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
