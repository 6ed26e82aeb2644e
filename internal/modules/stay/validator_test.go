package stay

import (
	"testing"
	"time"

	"stayfront/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testRoomType() *domain.RoomType {
	return &domain.RoomType{
		ID:           "rt-1",
		MaxOccupancy: 4,
		MaxAdults:    3,
		MaxChildren:  2,
	}
}

func futureDate(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, days)
}

func validInput() Input {
	return Input{
		GuestName:    "Ada Lovelace",
		GuestEmail:   "ada@example.com",
		CheckInDate:  futureDate(7),
		CheckOutDate: futureDate(10),
		Adults:       2,
		Children:     1,
	}
}

func TestValidateGuest_OK(t *testing.T) {
	res := ValidateGuest(validInput())
	assert.True(t, res.Valid())
}

func TestValidateGuest_MissingFields(t *testing.T) {
	res := ValidateGuest(Input{})
	assert.Equal(t, "name is required", res["guest_name"])
	assert.Equal(t, "email is required", res["guest_email"])
}

func TestValidateGuest_BadEmail(t *testing.T) {
	in := validInput()
	in.GuestEmail = "not-an-email"
	res := ValidateGuest(in)
	assert.Equal(t, "provide a valid email", res["guest_email"])
}

func TestValidateStay_OK(t *testing.T) {
	res := ValidateStay(validInput(), testRoomType())
	assert.True(t, res.Valid())
}

func TestValidateStay_TodayCheckInIsValid(t *testing.T) {
	in := validInput()
	in.CheckInDate = time.Now().UTC()
	in.CheckOutDate = futureDate(2)
	res := ValidateStay(in, testRoomType())
	assert.NotContains(t, res, "check_in_date")
}

func TestValidateStay_PastCheckIn(t *testing.T) {
	in := validInput()
	in.CheckInDate = futureDate(-1)
	res := ValidateStay(in, testRoomType())
	assert.Equal(t, "check-in date must not be in the past", res["check_in_date"])
}

func TestValidateStay_CheckOutNotAfterCheckIn(t *testing.T) {
	in := validInput()
	in.CheckOutDate = in.CheckInDate
	res := ValidateStay(in, testRoomType())
	assert.Equal(t, "must be after check-in date", res["check_out_date"])
}

func TestValidateStay_MissingDates(t *testing.T) {
	in := validInput()
	in.CheckInDate = time.Time{}
	in.CheckOutDate = time.Time{}
	res := ValidateStay(in, testRoomType())
	assert.Equal(t, "check-in date is required", res["check_in_date"])
	assert.Equal(t, "check-out date is required", res["check_out_date"])
}

func TestValidateStay_OccupancyBounds(t *testing.T) {
	rt := testRoomType()

	in := validInput()
	in.Adults = 0
	res := ValidateStay(in, rt)
	assert.Equal(t, "at least one adult is required", res["adults"])

	in = validInput()
	in.Adults = 4
	res = ValidateStay(in, rt)
	assert.Equal(t, "at most 3 adults allowed", res["adults"])

	in = validInput()
	in.Children = 3
	res = ValidateStay(in, rt)
	assert.Equal(t, "at most 2 children allowed", res["children"])

	in = validInput()
	in.Children = -1
	res = ValidateStay(in, rt)
	assert.Equal(t, "children cannot be negative", res["children"])
}

func TestValidateStay_JointOccupancyReportedOnAdults(t *testing.T) {
	in := validInput()
	in.Adults = 3
	in.Children = 2 // 5 > MaxOccupancy 4, individual caps respected
	res := ValidateStay(in, testRoomType())
	assert.Equal(t, "room sleeps at most 4 guests", res["adults"])
	assert.NotContains(t, res, "children")
}

func TestValidateStay_IndividualErrorWinsOverJoint(t *testing.T) {
	in := validInput()
	in.Adults = 5
	in.Children = 2
	res := ValidateStay(in, testRoomType())
	assert.Equal(t, "at most 3 adults allowed", res["adults"])
}

func TestValidate_MergesGuestAndStay(t *testing.T) {
	in := validInput()
	in.GuestName = ""
	in.Adults = 0
	res := Validate(in, testRoomType())
	assert.Equal(t, "name is required", res["guest_name"])
	assert.Equal(t, "at least one adult is required", res["adults"])
	assert.False(t, res.Valid())
}

func TestValidate_IndependentFieldsReportTogether(t *testing.T) {
	res := Validate(Input{}, testRoomType())
	for _, field := range []string{"guest_name", "guest_email", "check_in_date", "check_out_date", "adults"} {
		assert.Contains(t, res, field)
	}
}
