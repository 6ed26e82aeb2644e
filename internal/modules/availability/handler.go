package availability

import (
	"errors"
	"net/http"
	"time"

	"stayfront/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/units/:unitID/room-types", h.ListRoomTypes)
	rg.GET("/units/:unitID/room-types/:roomTypeID/availability", h.GetCalendar)
}

func (h *Handler) ListRoomTypes(c *gin.Context) {
	roomTypes, err := h.service.ListRoomTypes(c.Request.Context(), c.Param("unitID"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load room types")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room_types": roomTypes})
}

func (h *Handler) GetCalendar(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be YYYY-MM-DD")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be YYYY-MM-DD")
		return
	}
	if !to.After(from) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be after from")
		return
	}

	days, err := h.service.GetCalendar(c.Request.Context(), c.Param("unitID"), c.Param("roomTypeID"), from, to)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room type not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"days": days})
}
