package payment

import "errors"

var (
	ErrSessionNotFound = errors.New("payment session not found")
	ErrProvider        = errors.New("payment provider error")
)
