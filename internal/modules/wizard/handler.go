package wizard

import (
	"errors"
	"net/http"
	"time"

	"stayfront/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	wizard := rg.Group("/wizard")
	{
		wizard.POST("", h.Start)
		wizard.GET("/:draftID", h.Get)
		wizard.PUT("/:draftID/guest", h.UpdateGuest)
		wizard.PUT("/:draftID/stay", h.UpdateStay)
		wizard.POST("/:draftID/occupancy", h.AdjustOccupancy)
		wizard.POST("/:draftID/next", h.Next)
		wizard.POST("/:draftID/back", h.Back)
		wizard.POST("/:draftID/submit", h.Submit)
		wizard.DELETE("/:draftID", h.Close)
	}
}

func (h *Handler) Start(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	draft, err := h.service.Start(c.Request.Context(), req.BusinessUnitID, req.RoomTypeID)
	if err != nil {
		if errors.Is(err, ErrRoomTypeNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room type not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"draft": draft})
}

func (h *Handler) Get(c *gin.Context) {
	draft, err := h.service.Get(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		h.draftError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

func (h *Handler) UpdateGuest(c *gin.Context) {
	var req UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	draft, err := h.service.UpdateGuest(c.Request.Context(), c.Param("draftID"), GuestInput{
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
	})
	if err != nil {
		h.draftError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

func (h *Handler) UpdateStay(c *gin.Context) {
	var req UpdateStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	in := StayInput{Notes: req.Notes}
	if req.CheckInDate != nil {
		t, err := parseDate(*req.CheckInDate)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in_date must be YYYY-MM-DD")
			return
		}
		in.CheckInDate = &t
	}
	if req.CheckOutDate != nil {
		t, err := parseDate(*req.CheckOutDate)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out_date must be YYYY-MM-DD")
			return
		}
		in.CheckOutDate = &t
	}

	draft, err := h.service.UpdateStay(c.Request.Context(), c.Param("draftID"), in)
	if err != nil {
		h.draftError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

func (h *Handler) AdjustOccupancy(c *gin.Context) {
	var req AdjustOccupancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "field must be adults or children, delta must be -1 or 1")
		return
	}

	draft, err := h.service.AdjustOccupancy(c.Request.Context(), c.Param("draftID"), req.Field, req.Delta)
	if err != nil {
		h.draftError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

func (h *Handler) Next(c *gin.Context) {
	draft, result, err := h.service.Next(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		h.draftError(c, err)
		return
	}
	if !result.Valid() {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Please correct the highlighted fields", result)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

func (h *Handler) Back(c *gin.Context) {
	draft, err := h.service.Back(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		h.draftError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

func (h *Handler) Submit(c *gin.Context) {
	draft, result, err := h.service.Submit(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		h.draftError(c, err)
		return
	}
	if result != nil && !result.Valid() {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Please correct the highlighted fields", result)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"draft":              draft,
		"booking_id":         draft.BookingID,
		"payment_session_id": draft.PaymentSessionID,
		"checkout_url":       draft.CheckoutURL,
	})
}

func (h *Handler) Close(c *gin.Context) {
	if err := h.service.Close(c.Request.Context(), c.Param("draftID")); err != nil {
		h.draftError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"closed": true})
}

func (h *Handler) draftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDraftNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking draft not found or expired")
	case errors.Is(err, ErrRoomTypeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room type not found")
	case errors.Is(err, ErrAlreadySubmitted):
		response.Error(c, http.StatusConflict, "ALREADY_SUBMITTED", "This booking was already submitted")
	case errors.Is(err, ErrSubmitInFlight):
		response.Error(c, http.StatusConflict, "SUBMIT_IN_FLIGHT", "A submission is already in progress")
	case errors.Is(err, ErrNotReadyToSubmit):
		response.Error(c, http.StatusConflict, "NOT_READY", "Submission is only allowed from the review step")
	case errors.Is(err, ErrNoQuote):
		response.Error(c, http.StatusConflict, "NO_QUOTE", "No price has been computed for this stay")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}
