package controllers

import (
	"net/http"

	"frontdesk-backend/config"
	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// Hotel settings are a single row; get returns it, update patches it.

// GetHotelSettings (GET /api/settings/hotel)
func GetHotelSettings(c *gin.Context) {
	var setting models.HotelSetting
	if err := config.DB.First(&setting).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load hotel settings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

// UpdateHotelSettings (PUT /api/settings/hotel)
func UpdateHotelSettings(c *gin.Context) {
	var payload models.HotelSetting
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	var setting models.HotelSetting
	if err := config.DB.First(&setting).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load hotel settings")
		return
	}

	if err := config.DB.Model(&setting).Updates(map[string]interface{}{
		"name":    payload.Name,
		"address": payload.Address,
		"phone":   payload.Phone,
		"email":   payload.Email,
		"website": payload.Website,
	}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "update failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}
