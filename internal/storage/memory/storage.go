package memory

import (
	"context"
	"sync"

	"github.com/soracane/roomdraw/internal/model"
	"github.com/soracane/roomdraw/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// The mutex is held across the whole UpdateRoom callback, which gives
// the per-room atomicity the interface requires.
type Storage struct {
	mu    sync.RWMutex
	rooms map[model.RoomID]*model.Room
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		rooms: make(map[model.RoomID]*model.Room),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) CreateRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = cloneRoom(room)
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return cloneRoom(room), nil
}

func (s *Storage) RoomExists(ctx context.Context, id model.RoomID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[id]
	return ok, nil
}

func (s *Storage) UpdateRoom(ctx context.Context, id model.RoomID, update storage.UpdateFunc) (*model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.rooms[id]
	if !ok {
		return nil, model.ErrRoomNotFound
	}

	// Work on a copy so an aborted update leaves the stored room untouched
	room := cloneRoom(stored)
	if err := update(room); err != nil {
		return nil, err
	}

	s.rooms[id] = room
	return cloneRoom(room), nil
}

func cloneRoom(room *model.Room) *model.Room {
	clone := *room
	clone.Characters = make([]string, len(room.Characters))
	copy(clone.Characters, room.Characters)
	clone.Players = make([]model.Player, len(room.Players))
	copy(clone.Players, room.Players)
	return &clone
}
