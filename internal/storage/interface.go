package storage

import (
	"context"

	"github.com/soracane/roomdraw/internal/model"
)

// UpdateFunc mutates a room in place inside a transactional update.
// Returning an error aborts the update without writing.
type UpdateFunc func(room *model.Room) error

// Storage defines the interface for room persistence.
//
// UpdateRoom is the only mutation path after creation: implementations
// must apply the load, the callback's checks, and the write as a single
// atomic unit per room, so two concurrent joins cannot both claim the
// last slot. Errors returned by the callback abort the transaction and
// are propagated unchanged, never retried.
type Storage interface {
	// CreateRoom persists a new room keyed by its ID
	CreateRoom(ctx context.Context, room *model.Room) error

	// GetRoom fetches a room snapshot. Not transactional; may observe a
	// stale state under concurrent writes.
	GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error)

	// RoomExists reports whether a room with the given ID exists
	RoomExists(ctx context.Context, id model.RoomID) (bool, error)

	// UpdateRoom runs a read-modify-write transaction against a single
	// room and returns the room as written
	UpdateRoom(ctx context.Context, id model.RoomID, update UpdateFunc) (*model.Room, error)
}
