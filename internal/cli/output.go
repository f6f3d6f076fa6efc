package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CreateResult:
		o.printCreateResult(v)
	case Room:
		o.printRoom(v)
	case JoinResult:
		o.printJoinResult(v)
	case CharacterResult:
		o.printCharacterResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// CreateResult response type (matches API)
type CreateResult struct {
	Success bool   `json:"success"`
	RoomID  string `json:"roomId"`
}

// Room response type
type Room struct {
	RoomID      string       `json:"roomId"`
	Characters  []string     `json:"characters"`
	PlayerCount int          `json:"playerCount"`
	Players     []RoomPlayer `json:"players"`
	Status      string       `json:"status"`
}

// RoomPlayer response type
type RoomPlayer struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

// JoinResult response type
type JoinResult struct {
	RemainingPlayer int `json:"remainingPlayer"`
}

// CharacterResult response type
type CharacterResult struct {
	Character string `json:"character"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printCreateResult(c CreateResult) {
	fmt.Printf("Room created: %s\n", c.RoomID)
}

func (o *Output) printRoom(r Room) {
	fmt.Printf("Room: %s\n", r.RoomID)
	fmt.Printf("Status: %s\n", r.Status)
	fmt.Printf("Characters: %v\n", r.Characters)
	fmt.Printf("Players (%d/%d):\n", len(r.Players), r.PlayerCount)
	for _, p := range r.Players {
		if p.Character != "" {
			fmt.Printf("  - %s -> %s\n", p.Name, p.Character)
		} else {
			fmt.Printf("  - %s\n", p.Name)
		}
	}
}

func (o *Output) printJoinResult(j JoinResult) {
	if j.RemainingPlayer == 0 {
		fmt.Println("Joined. Room is now full and ready to start.")
	} else {
		fmt.Printf("Joined. Remaining slots: %d\n", j.RemainingPlayer)
	}
}

func (o *Output) printCharacterResult(c CharacterResult) {
	if c.Character == "" {
		fmt.Println("No character assigned yet")
	} else {
		fmt.Printf("Character: %s\n", c.Character)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
