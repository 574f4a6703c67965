package model

// StationsRequest represents the request parameters for station aggregation
type StationsRequest struct {
	Region string
	Limit  int
	Search string
}

// AddFavoriteRequest represents the body of POST /api/favorites
type AddFavoriteRequest struct {
	UserID      string `json:"user_id"`
	StationUUID string `json:"station_uuid"`
	StationName string `json:"station_name"`
	Country     string `json:"country"`
}

// AddFavoriteResponse reports the outcome of a favorite add. AlreadyExists is
// true when the (user, station) pair was saved before; the add is a no-op then.
type AddFavoriteResponse struct {
	Message       string    `json:"message"`
	AlreadyExists bool      `json:"already_exists"`
	Favorite      *Favorite `json:"favorite,omitempty"`
}

// FavoritesResponse represents the response for a favorites listing
type FavoritesResponse struct {
	Favorites []Favorite `json:"favorites"`
	Count     int        `json:"count"`
}

// CountriesResponse lists the countries behind each named region
type CountriesResponse struct {
	American []string `json:"american"`
	African  []string `json:"african"`
}
