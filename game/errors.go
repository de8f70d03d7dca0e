package game

import "errors"

var (
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrRoomFull        = errors.New("room_full")
	ErrRoomUnavailable = errors.New("room_unavailable")
)
