package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/alexivanou/worldradio-api/internal/model"
	"github.com/alexivanou/worldradio-api/internal/region"
	"github.com/alexivanou/worldradio-api/internal/service"
	"github.com/gorilla/mux"
)

const (
	defaultStationsLimit = 50
	defaultRegionLimit   = 30
	defaultSearchLimit   = 20
)

// Handler handles HTTP requests
type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetStations handles GET /api/stations
func (h *Handler) GetStations(w http.ResponseWriter, r *http.Request) {
	regionName := r.URL.Query().Get("region")
	if regionName == "" {
		regionName = region.All
	}

	limit, ok := parseLimit(w, r, defaultStationsLimit)
	if !ok {
		return
	}

	req := model.StationsRequest{
		Region: regionName,
		Limit:  limit,
		Search: r.URL.Query().Get("search"),
	}

	h.aggregateAndRespond(w, r, req)
}

// GetStationsByRegion handles GET /api/stations/by-region/{region}
func (h *Handler) GetStationsByRegion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	limit, ok := parseLimit(w, r, defaultRegionLimit)
	if !ok {
		return
	}

	req := model.StationsRequest{
		Region: vars["region"],
		Limit:  limit,
	}

	h.aggregateAndRespond(w, r, req)
}

// SearchStations handles GET /api/search
func (h *Handler) SearchStations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "query parameter 'q' is required", http.StatusBadRequest)
		return
	}

	regionName := r.URL.Query().Get("region")
	if regionName == "" {
		regionName = region.All
	}

	limit, ok := parseLimit(w, r, defaultSearchLimit)
	if !ok {
		return
	}

	req := model.StationsRequest{
		Region: regionName,
		Limit:  limit,
		Search: query,
	}

	h.aggregateAndRespond(w, r, req)
}

func (h *Handler) aggregateAndRespond(w http.ResponseWriter, r *http.Request, req model.StationsRequest) {
	stations, err := h.service.AggregateStations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, region.ErrInvalidRegion):
			http.Error(w, "unknown region: "+req.Region, http.StatusBadRequest)
		case errors.Is(err, service.ErrAllSourcesUnavailable):
			log.Printf("Error aggregating stations: %v", err)
			http.Error(w, "station directory unavailable", http.StatusServiceUnavailable)
		default:
			log.Printf("Error aggregating stations: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, stations)
}

// AddFavorite handles POST /api/favorites
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req model.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.StationUUID == "" {
		http.Error(w, "station_uuid is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AddFavorite(r.Context(), req)
	if err != nil {
		log.Printf("Error adding favorite: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp)
}

// ListFavorites handles GET /api/favorites
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	resp, err := h.service.ListFavorites(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing favorites: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, resp)
}

// RemoveFavorite handles DELETE /api/favorites/{station_uuid}
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stationUUID := vars["station_uuid"]
	userID := r.URL.Query().Get("user_id")

	deleted, err := h.service.RemoveFavorite(r.Context(), userID, stationUUID)
	if err != nil {
		log.Printf("Error removing favorite: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if !deleted {
		http.Error(w, "favorite not found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]string{"message": "Station removed from favorites"})
}

// GetCountries handles GET /api/countries
func (h *Handler) GetCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.service.Countries())
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func parseLimit(w http.ResponseWriter, r *http.Request, defaultValue int) (int, bool) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return defaultValue, true
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		http.Error(w, "invalid limit parameter", http.StatusBadRequest)
		return 0, false
	}
	return limit, true
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
