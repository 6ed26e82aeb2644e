package rates

import (
	"errors"
	"net/http"
	"time"

	"stayfront/internal/pkg/response"
	"stayfront/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quotes", h.Quote)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid quote request", errs)
		return
	}

	checkIn, _ := time.Parse("2006-01-02", req.CheckInDate)
	checkOut, _ := time.Parse("2006-01-02", req.CheckOutDate)

	breakdown, err := h.service.Quote(c.Request.Context(), req.BusinessUnitID, req.RoomTypeID, checkIn, checkOut, req.Adults, req.Children)
	if err != nil {
		if errors.Is(err, ErrRoomTypeNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room type not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute quote")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": breakdown})
}
