package response

import (
	"github.com/soracane/roomdraw/internal/model"
)

// Player represents a player in API responses
type Player struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		Name:      p.Name,
		Character: p.Character,
	}
}

// Room is the admin-view room snapshot. The admin password hash is
// deliberately not part of the response shape.
type Room struct {
	RoomID      string   `json:"roomId"`
	Characters  []string `json:"characters"`
	PlayerCount int      `json:"playerCount"`
	Players     []Player `json:"players"`
	Status      string   `json:"status"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

// RoomFromModel converts model.Room
func RoomFromModel(r *model.Room) Room {
	players := make([]Player, len(r.Players))
	for i, p := range r.Players {
		players[i] = PlayerFromModel(p)
	}

	return Room{
		RoomID:      string(r.ID),
		Characters:  r.Characters,
		PlayerCount: r.PlayerCount,
		Players:     players,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// CreateRoomResponse is the response after creating a room
type CreateRoomResponse struct {
	Success bool   `json:"success"`
	RoomID  string `json:"roomId"`
}

// JoinRoomResponse is the response after joining a room
type JoinRoomResponse struct {
	RemainingPlayer int `json:"remainingPlayer"`
}

// CharacterResponse is the response for a player's character lookup
type CharacterResponse struct {
	Character string `json:"character"`
}
