package wizard

import "errors"

var (
	ErrDraftNotFound    = errors.New("draft not found or expired")
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrNotReadyToSubmit = errors.New("submission is only allowed from the review step")
	ErrSubmitInFlight   = errors.New("a submission is already in progress")
	ErrAlreadySubmitted = errors.New("draft was already submitted")
	ErrNoQuote          = errors.New("no price has been computed for this stay")
)
