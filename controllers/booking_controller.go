// controllers/booking_controller.go
package controllers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"hotel-booking/middleware"
	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

// BookingService is what the controller needs from services.BookingService.
type BookingService interface {
	GetBooking(ctx context.Context, userID uint) (*models.Booking, error)
	CreateBooking(ctx context.Context, userID, roomID uint) (*models.Booking, error)
	UpdateBooking(ctx context.Context, userID, bookingID, roomID uint) (*models.Booking, error)
}

// roomPayload keeps roomId untyped so numbers and numeric strings both coerce.
type roomPayload struct {
	RoomID interface{} `json:"roomId"`
}

type BookingController struct {
	BookingSvc BookingService
}

func NewBookingController(svc BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// GetBooking (GET /booking)
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "missing authenticated user")
		return
	}

	booking, err := ctrl.BookingSvc.GetBooking(c.Request.Context(), userID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CreateBooking (POST /booking)
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "missing authenticated user")
		return
	}

	roomID, ok := bindRoomID(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(c.Request.Context(), userID, roomID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// UpdateBooking (PUT /booking/:bookingId)
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "missing authenticated user")
		return
	}

	roomID, ok := bindRoomID(c)
	if !ok {
		return
	}
	bookingID := utils.ParseID(c.Param("bookingId"))

	booking, err := ctrl.BookingSvc.UpdateBooking(c.Request.Context(), userID, bookingID, roomID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// bindRoomID reads roomId from the body. An empty body is a missing roomId,
// not a bad request; it coerces to 0 and ends up as room not found.
func bindRoomID(c *gin.Context) (uint, bool) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "request body must be a JSON object with roomId")
		return 0, false
	}
	return utils.CoerceID(payload.RoomID), true
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.bookingNotFound", "user has no booking")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.roomNotFound", "room not found")
	case errors.Is(err, services.ErrRoomFull):
		utils.JSONError(c, http.StatusForbidden, "error.roomFull", "room is full")
	case errors.Is(err, services.ErrTicketNotEligible):
		utils.JSONError(c, http.StatusForbidden, "error.ticketNotEligible", "a paid in-person ticket with hotel is required")
	case errors.Is(err, services.ErrAlreadyBooked):
		utils.JSONError(c, http.StatusForbidden, "error.alreadyBooked", "user already has a booking")
	case errors.Is(err, services.ErrNoBooking):
		utils.JSONError(c, http.StatusForbidden, "error.noBooking", "user has no booking to change")
	case errors.Is(err, services.ErrBookingMismatch):
		utils.JSONError(c, http.StatusForbidden, "error.bookingMismatch", "booking does not belong to user")
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notFound", err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "error.forbidden", err.Error())
	default:
		log.Printf("booking request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal server error")
	}
}
