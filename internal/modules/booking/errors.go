package booking

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrDuplicateSubmission = errors.New("booking already has a payment session")
)
