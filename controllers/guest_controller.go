package controllers

import (
	"errors"
	"net/http"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	Guests *services.GuestService
}

func NewGuestController(guests *services.GuestService) *GuestController {
	return &GuestController{Guests: guests}
}

// GetGuests (GET /api/guests?q=) — full list, or a search when q is set.
func (gc *GuestController) GetGuests(c *gin.Context) {
	var (
		guests []models.Guest
		err    error
	)
	if q := c.Query("q"); q != "" {
		guests, err = gc.Guests.Search(q)
	} else {
		guests, err = gc.Guests.GetAll()
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load guests")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// GetGuest (GET /api/guests/:id)
func (gc *GuestController) GetGuest(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	guest, err := gc.Guests.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "guest not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load guest")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// InsertUpdateGuest (POST /api/guests/insertupdate) — idempotent upsert,
// guestId 0 creates, non-zero updates.
func (gc *GuestController) InsertUpdateGuest(c *gin.Context) {
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	saved, err := gc.Guests.InsertUpdate(guest)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "guest not found")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, saved)
}

// DeleteGuest (DELETE /api/guests/:id)
func (gc *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := gc.Guests.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "guest not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete guest")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "guest deleted"})
}
