package wizard

type StartRequest struct {
	BusinessUnitID string `json:"business_unit_id" binding:"required"`
	RoomTypeID     string `json:"room_type_id" binding:"required"`
}

type UpdateGuestRequest struct {
	GuestName  *string `json:"guest_name"`
	GuestEmail *string `json:"guest_email"`
	GuestPhone *string `json:"guest_phone"`
}

// Dates travel as YYYY-MM-DD strings; an explicit empty string clears the
// date.
type UpdateStayRequest struct {
	CheckInDate  *string `json:"check_in_date"`
	CheckOutDate *string `json:"check_out_date"`
	Notes        *string `json:"notes"`
}

type AdjustOccupancyRequest struct {
	Field string `json:"field" binding:"required,oneof=adults children"`
	Delta int    `json:"delta" binding:"required,oneof=-1 1"`
}
