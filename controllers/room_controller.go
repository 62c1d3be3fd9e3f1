package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GetRooms (GET /api/rooms)
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Rooms.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetAvailableRooms (GET /api/rooms/available) — the check-in room picker.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := rc.Rooms.Available()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve availability")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetRoom (GET /api/rooms/:id)
func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	room, err := rc.Rooms.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// CreateRoom (POST /api/rooms)
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if room.Number == "" {
		utils.JSONError(c, http.StatusBadRequest, "room number is required")
		return
	}
	if err := rc.Rooms.Create(&room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// UpdateRoom (PATCH /api/rooms/:id)
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := rc.Rooms.Update(id, fields); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room updated"})
}

// DeleteRoom (DELETE /api/rooms/:id)
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := rc.Rooms.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}

// MarkClean (POST /api/rooms/:id/markclean) — housekeeping done.
func (rc *RoomController) MarkClean(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := rc.Rooms.MarkClean(id); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "room not found")
		case errors.Is(err, services.ErrRoomNotDirty):
			utils.JSONError(c, http.StatusConflict, "room is not awaiting cleaning")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to mark room clean")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room marked clean"})
}
