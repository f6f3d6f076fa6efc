package model

// RoomID is the short code players use to address a room
type RoomID string

// RoomStatus represents the lifecycle state of a room
type RoomStatus string

const (
	// RoomStatusWaiting means the room is accepting joins
	RoomStatusWaiting RoomStatus = "waiting"
	// RoomStatusReady means capacity is reached, awaiting admin start
	RoomStatusReady RoomStatus = "ready"
	// RoomStatusStarted means characters are assigned; the room is terminal
	RoomStatusStarted RoomStatus = "started"
)

// Player is a participant in a room. Character stays empty until the
// admin starts the room.
type Player struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

// Room is the aggregate for one draw session. Characters are a multiset:
// each occurrence of a name is one assignment slot. Players is ordered by
// join time and never exceeds PlayerCount.
type Room struct {
	ID                RoomID     `json:"roomId"`
	AdminPasswordHash string     `json:"adminPasswordHash"`
	Characters        []string   `json:"characters"`
	PlayerCount       int        `json:"playerCount"`
	Players           []Player   `json:"players"`
	Status            RoomStatus `json:"status"`
	CreatedAt         int64      `json:"createdAt"`
	UpdatedAt         int64      `json:"updatedAt"`
}

// GetPlayer returns the player with the given name, or nil if not joined.
// Names are compared case-sensitively.
func (r *Room) GetPlayer(name string) *Player {
	for i := range r.Players {
		if r.Players[i].Name == name {
			return &r.Players[i]
		}
	}
	return nil
}

// RemainingSlots returns how many players can still join
func (r *Room) RemainingSlots() int {
	return r.PlayerCount - len(r.Players)
}

// IsFull reports whether every slot is taken
func (r *Room) IsFull() bool {
	return len(r.Players) >= r.PlayerCount
}

// CharacterQuota builds the quota table: character name -> number of
// occurrences in the configured character list
func (r *Room) CharacterQuota() map[string]int {
	quota := make(map[string]int, len(r.Characters))
	for _, c := range r.Characters {
		quota[c]++
	}
	return quota
}
