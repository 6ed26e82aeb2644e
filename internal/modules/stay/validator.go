package stay

import (
	"fmt"
	"net/mail"
	"time"

	"stayfront/internal/domain"
)

// Input carries everything the validator looks at. It is assembled from the
// wizard draft, so guest and stay fields arrive together.
type Input struct {
	GuestName    string
	GuestEmail   string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Adults       int
	Children     int
}

// ValidateGuest checks the fields owned by the guest-details step.
// Pure function: safe to call on every form edit.
func ValidateGuest(in Input) domain.ValidationResult {
	res := domain.ValidationResult{}

	if in.GuestName == "" {
		res["guest_name"] = "name is required"
	}

	if in.GuestEmail == "" {
		res["guest_email"] = "email is required"
	} else if _, err := mail.ParseAddress(in.GuestEmail); err != nil {
		res["guest_email"] = "provide a valid email"
	}

	return res
}

// ValidateStay checks the fields owned by the stay-details step against the
// room type's occupancy rules. The first failing rule per field wins;
// independent fields report simultaneously.
func ValidateStay(in Input, rt *domain.RoomType) domain.ValidationResult {
	res := domain.ValidationResult{}

	today := dateOnly(time.Now().UTC())

	switch {
	case in.CheckInDate.IsZero():
		res["check_in_date"] = "check-in date is required"
	case dateOnly(in.CheckInDate).Before(today):
		res["check_in_date"] = "check-in date must not be in the past"
	}

	switch {
	case in.CheckOutDate.IsZero():
		res["check_out_date"] = "check-out date is required"
	case !in.CheckInDate.IsZero() && !dateOnly(in.CheckOutDate).After(dateOnly(in.CheckInDate)):
		res["check_out_date"] = "must be after check-in date"
	}

	if in.Adults < 1 {
		res["adults"] = "at least one adult is required"
	} else if in.Adults > rt.MaxAdults {
		res["adults"] = fmt.Sprintf("at most %d adults allowed", rt.MaxAdults)
	}

	if in.Children < 0 {
		res["children"] = "children cannot be negative"
	} else if in.Children > rt.MaxChildren {
		res["children"] = fmt.Sprintf("at most %d children allowed", rt.MaxChildren)
	}

	if _, ok := res["adults"]; !ok {
		if in.Adults+in.Children > rt.MaxOccupancy {
			res["adults"] = fmt.Sprintf("room sleeps at most %d guests", rt.MaxOccupancy)
		}
	}

	return res
}

// Validate runs the full rule set, used on final submission as a defense
// against stale drafts.
func Validate(in Input, rt *domain.RoomType) domain.ValidationResult {
	res := ValidateGuest(in)
	for field, reason := range ValidateStay(in, rt) {
		res[field] = reason
	}
	return res
}

// dateOnly discards the time-of-day; all stay rules work at day granularity.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
