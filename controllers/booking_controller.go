package controllers

import (
	"errors"
	"net/http"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

// GetBookings (GET /api/bookings)
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Bookings.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetActiveBookings (GET /api/bookings/active) — the live stays feeding
// availability, occupancy and the check-out screen.
func (bc *BookingController) GetActiveBookings(c *gin.Context) {
	bookings, err := bc.Bookings.Active()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load active bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBooking (GET /api/bookings/:id)
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	booking, err := bc.Bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CheckIn (POST /api/bookings/checkin)
func (bc *BookingController) CheckIn(c *gin.Context) {
	var in services.CheckInInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	booking, err := bc.Bookings.CheckIn(in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "room not found")
		case errors.Is(err, services.ErrRoomUnavailable):
			utils.JSONError(c, http.StatusConflict, "room is not available")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "check-in failed")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// CheckOut (POST /api/bookings/:id/checkout). On success the response
// carries the closed booking plus the full billing breakdown; the invoice
// is created in the background and its outcome never changes this result.
func (bc *BookingController) CheckOut(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in services.CheckOutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	booking, bill, err := bc.Bookings.CheckOut(id, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking not found")
		case errors.Is(err, services.ErrBookingNotActive):
			utils.JSONError(c, http.StatusConflict, "booking is not active")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "check-out failed")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking": booking, "bill": bill})
}

// CancelBooking (POST /api/bookings/:id/cancel)
func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := bc.Bookings.Cancel(id); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking not found")
		case errors.Is(err, services.ErrBookingNotActive):
			utils.JSONError(c, http.StatusConflict, "booking is not active")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "cancel failed")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "booking cancelled"})
}
