package api

import (
	"net/http"

	"github.com/alexivanou/worldradio-api/internal/service"
	"github.com/alexivanou/worldradio-api/internal/stats"
	"github.com/gorilla/mux"
)

// NewRouter creates a new HTTP router
func NewRouter(service service.ServiceInterface, statsCollector *stats.Collector) *mux.Router {
	handler := NewHandler(service)
	statsHandler := NewStatsHandler(statsCollector)

	router := mux.NewRouter()
	router.Use(corsMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/stations", handler.GetStations).Methods("GET")
	api.HandleFunc("/stations/by-region/{region}", handler.GetStationsByRegion).Methods("GET")
	api.HandleFunc("/search", handler.SearchStations).Methods("GET")
	api.HandleFunc("/favorites", handler.AddFavorite).Methods("POST")
	api.HandleFunc("/favorites", handler.ListFavorites).Methods("GET")
	api.HandleFunc("/favorites/{station_uuid}", handler.RemoveFavorite).Methods("DELETE")
	api.HandleFunc("/countries", handler.GetCountries).Methods("GET")
	api.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	return router
}

// corsMiddleware allows the API to be called from a browser frontend on any
// origin
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
