package request

// CreateRoomRequest is the request body for creating a room.
// Field names stay camelCase for wire compatibility with existing clients.
type CreateRoomRequest struct {
	AdminPassword string   `json:"adminPassword"`
	Characters    []string `json:"characters"`
	PlayerCount   int      `json:"playerCount"`
}

// JoinRoomRequest is the request body for joining a room
type JoinRoomRequest struct {
	PlayerName string `json:"playerName"`
}
