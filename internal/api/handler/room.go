package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/soracane/roomdraw/internal/api/apierr"
	"github.com/soracane/roomdraw/internal/api/request"
	"github.com/soracane/roomdraw/internal/api/response"
	"github.com/soracane/roomdraw/internal/model"
	"github.com/soracane/roomdraw/internal/services/room"
)

// RoomHandler handles room lifecycle endpoints
type RoomHandler struct {
	controller room.ControllerInterface
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(controller room.ControllerInterface) *RoomHandler {
	return &RoomHandler{
		controller: controller,
	}
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	created, err := h.controller.CreateRoom(r.Context(), room.CreateParams{
		AdminPassword: req.AdminPassword,
		Characters:    req.Characters,
		PlayerCount:   req.PlayerCount,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreateRoomResponse{
		Success: true,
		RoomID:  string(created.ID),
	})
}

// Get handles GET /api/v1/rooms/{roomId}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.RoomID(mux.Vars(r)["roomId"])
	adminPassword := r.URL.Query().Get("adminPassword")

	snapshot, err := h.controller.GetRoom(r.Context(), id, adminPassword)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(snapshot))
}

// Join handles POST /api/v1/rooms/{roomId}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	id := model.RoomID(mux.Vars(r)["roomId"])

	var req request.JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	remaining, err := h.controller.JoinRoom(r.Context(), id, req.PlayerName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.JoinRoomResponse{
		RemainingPlayer: remaining,
	})
}

// Start handles POST /api/v1/rooms/{roomId}/start
func (h *RoomHandler) Start(w http.ResponseWriter, r *http.Request) {
	id := model.RoomID(mux.Vars(r)["roomId"])
	adminPassword := r.URL.Query().Get("adminPassword")

	started, err := h.controller.AssignCharacters(r.Context(), id, adminPassword)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(started))
}

// GetCharacter handles GET /api/v1/rooms/{roomId}/character
func (h *RoomHandler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	id := model.RoomID(mux.Vars(r)["roomId"])
	playerName := r.URL.Query().Get("playerName")
	if playerName == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("playerName is required"))
		return
	}

	character, err := h.controller.GetCharacter(r.Context(), id, playerName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CharacterResponse{
		Character: character,
	})
}
