package redis

import (
	"fmt"

	"github.com/soracane/roomdraw/internal/model"
)

// Key prefix for all room data
const keyPrefix = "roomdraw"

// roomKey returns the Redis key for a Room document
func roomKey(id model.RoomID) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, id)
}
