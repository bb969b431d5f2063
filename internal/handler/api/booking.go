package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "roomhub/internal/handler/dto/request"
	resdto "roomhub/internal/handler/dto/response"
	"roomhub/internal/handler/httperr"
	"roomhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary Create booking
// @Description Customer requests a visit to a catalog property
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	created, err := h.bookingUseCase.Create(c.Request.Context(), req.ToFields())
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": created.ID})
}

// @Summary List bookings
// @Description List bookings; a partner filter shows only confirmed bookings on that partner's approved listings
// @Tags bookings
// @Produce json
// @Param status query string false "Status filter"
// @Param property query string false "Catalog entry id filter"
// @Param partner query string false "Partner filter"
// @Success 200 {array} resdto.BookingResponse
// @Router /api/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := usecase.BookingFilter{
		Status:   c.Query("status"),
		Property: c.Query("property"),
		Partner:  c.Query("partner"),
	}

	seq, err := h.bookingUseCase.List(c.Request.Context(), filter)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	bookings := []*resdto.BookingResponse{}
	for b := range seq {
		bookings = append(bookings, resdto.FromBooking(&b))
	}
	c.JSON(http.StatusOK, bookings)
}

// @Summary Confirm booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body reqdto.ConfirmBookingRequest true "Confirming actor"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /api/bookings/{id}/confirm [put]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req reqdto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	actor := resolveActor(c, req.Actor)
	if actor == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Actor id required"})
		return
	}

	updated, err := h.bookingUseCase.Confirm(c.Request.Context(), id, actor)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(updated))
}

// @Summary Cancel booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Cancelling actor and reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/bookings/{id}/cancel [put]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req reqdto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	actor := resolveActor(c, req.Actor)
	if actor == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Actor id required"})
		return
	}

	updated, err := h.bookingUseCase.Cancel(c.Request.Context(), id, actor, req.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(updated))
}

func bookingID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return 0, false
	}
	return id, true
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, usecase.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking status does not permit this operation"})
	case errors.Is(err, usecase.ErrValidation):
		field, _ := usecase.MissingField(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": field})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
