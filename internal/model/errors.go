package model

import "errors"

// Common errors used across the application
var (
	// Request errors
	ErrInvalidRequest = errors.New("invalid request")

	// Room errors
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomFull            = errors.New("room is full")
	ErrRoomNotFull         = errors.New("room is not full")
	ErrRoomNotReady        = errors.New("room is not ready")
	ErrNotEnoughCharacters = errors.New("player count exceeds available characters")

	// Player errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrDuplicatePlayer = errors.New("duplicate player name")

	// Auth errors
	ErrInvalidAdminPassword = errors.New("invalid admin password")
)
