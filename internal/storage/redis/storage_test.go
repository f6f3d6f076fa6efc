package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/soracane/roomdraw/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) testRoom() *model.Room {
	return &model.Room{
		ID:                "abc123",
		AdminPasswordHash: "hash",
		Characters:        []string{"wolf", "villager", "villager"},
		PlayerCount:       3,
		Players:           []model.Player{},
		Status:            model.RoomStatusWaiting,
		CreatedAt:         1700000000000,
		UpdatedAt:         1700000000000,
	}
}

func (s *StorageSuite) TestCreateAndGetRoom() {
	err := s.storage.CreateRoom(s.ctx, s.testRoom())
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRoom(s.ctx, "abc123")
	s.Require().NoError(err)
	s.Equal(model.RoomID("abc123"), retrieved.ID)
	s.Equal(model.RoomStatusWaiting, retrieved.Status)
	s.Equal([]string{"wolf", "villager", "villager"}, retrieved.Characters)
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoom(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestRoomExists() {
	exists, err := s.storage.RoomExists(s.ctx, "abc123")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.CreateRoom(s.ctx, s.testRoom())

	exists, err = s.storage.RoomExists(s.ctx, "abc123")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestRoomHasTTL() {
	_ = s.storage.CreateRoom(s.ctx, s.testRoom())
	s.Greater(s.mini.TTL(roomKey("abc123")), time.Duration(0))
}

func (s *StorageSuite) TestUpdateRoomApplies() {
	_ = s.storage.CreateRoom(s.ctx, s.testRoom())

	updated, err := s.storage.UpdateRoom(s.ctx, "abc123", func(room *model.Room) error {
		room.Players = append(room.Players, model.Player{Name: "alice"})
		room.UpdatedAt = 1700000001000
		return nil
	})
	s.Require().NoError(err)
	s.Len(updated.Players, 1)

	retrieved, _ := s.storage.GetRoom(s.ctx, "abc123")
	s.Len(retrieved.Players, 1)
	s.Equal(int64(1700000001000), retrieved.UpdatedAt)
}

func (s *StorageSuite) TestUpdateRoomNotFound() {
	_, err := s.storage.UpdateRoom(s.ctx, "nonexistent", func(room *model.Room) error {
		return nil
	})
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestUpdateRoomAbortLeavesRoomUnchanged() {
	_ = s.storage.CreateRoom(s.ctx, s.testRoom())

	boom := errors.New("boom")
	_, err := s.storage.UpdateRoom(s.ctx, "abc123", func(room *model.Room) error {
		room.Players = append(room.Players, model.Player{Name: "alice"})
		return boom
	})
	s.ErrorIs(err, boom)

	retrieved, _ := s.storage.GetRoom(s.ctx, "abc123")
	s.Empty(retrieved.Players)
}

func (s *StorageSuite) TestUpdateRoomBusinessErrorNotRetried() {
	_ = s.storage.CreateRoom(s.ctx, s.testRoom())

	calls := 0
	_, err := s.storage.UpdateRoom(s.ctx, "abc123", func(room *model.Room) error {
		calls++
		return model.ErrRoomFull
	})
	s.ErrorIs(err, model.ErrRoomFull)
	s.Equal(1, calls)
}

func (s *StorageSuite) TestConcurrentUpdatesAllApply() {
	_ = s.storage.CreateRoom(s.ctx, s.testRoom())

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := s.storage.UpdateRoom(s.ctx, "abc123", func(room *model.Room) error {
				room.Players = append(room.Players, model.Player{Name: fmt.Sprintf("player-%d", n)})
				return nil
			})
			s.NoError(err)
		}(i)
	}
	wg.Wait()

	retrieved, _ := s.storage.GetRoom(s.ctx, "abc123")
	s.Len(retrieved.Players, writers)
}
