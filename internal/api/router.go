package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/soracane/roomdraw/internal/api/handler"
	apimiddleware "github.com/soracane/roomdraw/internal/api/middleware"
	"github.com/soracane/roomdraw/internal/middleware"
	"github.com/soracane/roomdraw/internal/services/room"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	RoomController room.ControllerInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	roomHandler := handler.NewRoomHandler(cfg.RoomController)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Room routes
	rooms := api.PathPrefix("/rooms").Subrouter()
	rooms.HandleFunc("", roomHandler.Create).Methods(http.MethodPost)
	rooms.HandleFunc("/{roomId}", roomHandler.Get).Methods(http.MethodGet)
	rooms.HandleFunc("/{roomId}/join", roomHandler.Join).Methods(http.MethodPost)
	rooms.HandleFunc("/{roomId}/start", roomHandler.Start).Methods(http.MethodPost)
	rooms.HandleFunc("/{roomId}/character", roomHandler.GetCharacter).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
