package controllers

import (
	"errors"
	"net/http"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomTypeController struct {
	Types *services.RoomTypeService
}

func NewRoomTypeController(types *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{Types: types}
}

// GetRoomTypes (GET /api/roomtypes)
func (tc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := tc.Types.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room types")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

// CreateRoomType (POST /api/roomtypes)
func (tc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if rt.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}
	if err := tc.Types.Create(&rt); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room type")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

// UpdateRoomType (PUT /api/roomtypes/:id)
func (tc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := tc.Types.Update(id, rt); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room type not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room type updated"})
}

// DeleteRoomType (DELETE /api/roomtypes/:id)
func (tc *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := tc.Types.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room type not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room type")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room type deleted"})
}
