package model

import "time"

// Favorite represents a saved station for a user. The (UserID, StationUUID)
// pair is unique; StationName and Country are denormalized so the list renders
// without re-querying the upstream.
type Favorite struct {
	UserID      string    `json:"user_id" db:"user_id"`
	StationUUID string    `json:"station_uuid" db:"station_uuid"`
	StationName string    `json:"station_name" db:"station_name"`
	Country     string    `json:"country" db:"country"`
	AddedAt     time.Time `json:"added_at" db:"added_at"`
}
