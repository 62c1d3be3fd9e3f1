package controllers

import (
	"errors"
	"net/http"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type ChargeController struct {
	Charges *services.ChargeService
}

func NewChargeController(charges *services.ChargeService) *ChargeController {
	return &ChargeController{Charges: charges}
}

// GetChargesByBooking (GET /api/charges/booking/:id)
func (cc *ChargeController) GetChargesByBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	charges, err := cc.Charges.GetByBooking(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load charges")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, charges)
}

// AddCharge (POST /api/charges). Rejected outright for non-live bookings;
// the ledger is frozen once checkout completes.
func (cc *ChargeController) AddCharge(c *gin.Context) {
	var charge models.Charge
	if err := c.ShouldBindJSON(&charge); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	saved, err := cc.Charges.Add(charge)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking not found")
		case errors.Is(err, services.ErrBookingNotActive):
			utils.JSONError(c, http.StatusConflict, "booking is not active")
		case errors.Is(err, services.ErrInvalidAmount):
			utils.JSONError(c, http.StatusBadRequest, "amount must be positive")
		default:
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, saved)
}

// DeleteCharge (DELETE /api/charges/:id)
func (cc *ChargeController) DeleteCharge(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := cc.Charges.Remove(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "charge not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete charge")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "charge deleted"})
}
