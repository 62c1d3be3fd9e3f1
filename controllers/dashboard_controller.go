package controllers

import (
	"net/http"
	"time"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

// GetStats (GET /api/dashboard/stats)
func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.Dashboard.Stats(time.Now())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard stats")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// GetRoomBoard (GET /api/dashboard/rooms) — per-room display status grid.
func (dc *DashboardController) GetRoomBoard(c *gin.Context) {
	board, err := dc.Dashboard.RoomBoard()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room board")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, board)
}
