package room

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/soracane/roomdraw/internal/dependencies/clock"
	"github.com/soracane/roomdraw/internal/dependencies/random"
	"github.com/soracane/roomdraw/internal/model"
	"github.com/soracane/roomdraw/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6
	// RoomCodeAlphabet is the characters used in room codes
	RoomCodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var validate = validator.New()

// CreateParams is the input for creating a room
type CreateParams struct {
	AdminPassword string   `validate:"required"`
	Characters    []string `validate:"required,min=1,dive,required"`
	PlayerCount   int      `validate:"required,gt=0"`
}

// Controller owns the room lifecycle: creation, capacity-gated joining,
// and the randomized character assignment
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new room Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateRoom validates the request, generates a fresh collision-checked
// room code and persists the new room in the waiting state.
//
// Player count must not exceed the number of configured characters;
// otherwise assignment could never complete once the room fills.
func (c *Controller) CreateRoom(ctx context.Context, params CreateParams) (*model.Room, error) {
	if err := validate.Struct(params); err != nil {
		return nil, model.ErrInvalidRequest
	}
	if params.PlayerCount > len(params.Characters) {
		return nil, model.ErrNotEnoughCharacters
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Generate unique room code
	var id model.RoomID
	for {
		id = model.RoomID(c.random.String(RoomCodeLength, RoomCodeAlphabet))
		exists, err := c.storage.RoomExists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	now := c.clock.Now().UnixMilli()
	room := &model.Room{
		ID:                id,
		AdminPasswordHash: string(hash),
		Characters:        params.Characters,
		PlayerCount:       params.PlayerCount,
		Players:           []model.Player{},
		Status:            model.RoomStatusWaiting,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := c.storage.CreateRoom(ctx, room); err != nil {
		return nil, err
	}

	c.logger.Info("room created",
		slog.String("room_id", string(id)),
		slog.Int("player_count", params.PlayerCount),
		slog.Int("characters", len(params.Characters)),
	)

	return room, nil
}

// GetRoom retrieves the full room snapshot for the admin view. The
// password is checked before anything about the room is revealed.
func (c *Controller) GetRoom(ctx context.Context, id model.RoomID, adminPassword string) (*model.Room, error) {
	room, err := c.storage.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkAdminPassword(room, adminPassword); err != nil {
		return nil, err
	}
	return room, nil
}

// JoinRoom appends a player to a waiting room and returns how many
// slots remain. The capacity check, the duplicate-name check and the
// write happen inside a single storage transaction, so the last open
// slot can only be claimed once. Names are matched case-sensitively.
func (c *Controller) JoinRoom(ctx context.Context, id model.RoomID, playerName string) (int, error) {
	if playerName == "" {
		return 0, model.ErrInvalidRequest
	}

	room, err := c.storage.UpdateRoom(ctx, id, func(room *model.Room) error {
		if room.IsFull() {
			return model.ErrRoomFull
		}
		if room.GetPlayer(playerName) != nil {
			return model.ErrDuplicatePlayer
		}

		room.Players = append(room.Players, model.Player{Name: playerName})
		if room.IsFull() {
			room.Status = model.RoomStatusReady
		}
		room.UpdatedAt = c.clock.Now().UnixMilli()
		return nil
	})
	if err != nil {
		return 0, err
	}

	return room.RemainingSlots(), nil
}

// AssignCharacters deals a character to every player and moves the room
// to its terminal started state. The character multiset is shuffled
// once and dealt to players in join order, which gives each player a
// uniformly-chosen character from the remaining pool while respecting
// every character's quota.
func (c *Controller) AssignCharacters(ctx context.Context, id model.RoomID, adminPassword string) (*model.Room, error) {
	room, err := c.storage.UpdateRoom(ctx, id, func(room *model.Room) error {
		if err := checkAdminPassword(room, adminPassword); err != nil {
			return err
		}
		if !room.IsFull() {
			return model.ErrRoomNotFull
		}
		if room.Status != model.RoomStatusReady {
			return model.ErrRoomNotReady
		}

		deck := make([]string, len(room.Characters))
		copy(deck, room.Characters)
		c.random.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})

		for i := range room.Players {
			room.Players[i].Character = deck[i]
		}

		room.Status = model.RoomStatusStarted
		room.UpdatedAt = c.clock.Now().UnixMilli()
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("characters assigned", slog.String("room_id", string(id)))

	return room, nil
}

// GetCharacter returns the named player's assigned character. Before
// assignment it is the empty string; this read is advisory and does
// not require the admin password.
func (c *Controller) GetCharacter(ctx context.Context, id model.RoomID, playerName string) (string, error) {
	room, err := c.storage.GetRoom(ctx, id)
	if err != nil {
		return "", err
	}

	player := room.GetPlayer(playerName)
	if player == nil {
		return "", model.ErrPlayerNotFound
	}
	return player.Character, nil
}

func checkAdminPassword(room *model.Room, password string) error {
	if bcrypt.CompareHashAndPassword([]byte(room.AdminPasswordHash), []byte(password)) != nil {
		return model.ErrInvalidAdminPassword
	}
	return nil
}

// ControllerInterface is the contract consumed by the API layer
type ControllerInterface interface {
	CreateRoom(ctx context.Context, params CreateParams) (*model.Room, error)
	GetRoom(ctx context.Context, id model.RoomID, adminPassword string) (*model.Room, error)
	JoinRoom(ctx context.Context, id model.RoomID, playerName string) (int, error)
	AssignCharacters(ctx context.Context, id model.RoomID, adminPassword string) (*model.Room, error)
	GetCharacter(ctx context.Context, id model.RoomID, playerName string) (string, error)
}

var _ ControllerInterface = (*Controller)(nil)
