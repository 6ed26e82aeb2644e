package rates

import "errors"

var (
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrProvider         = errors.New("pricing provider error")
)
