package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"frontdesk-backend/controllers"
	"frontdesk-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	tc *controllers.RoomTypeController,
	gc *controllers.GuestController,
	bc *controllers.BookingController,
	cc *controllers.ChargeController,
	ic *controllers.InvoiceController,
	dc *controllers.DashboardController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/auth/login", ac.Login)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth(jwtSecret))
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)

			// must stay ahead of /:id
			rooms.GET("/available", rc.GetAvailableRooms)

			rooms.GET("/:id", rc.GetRoom)
			rooms.POST("", rc.CreateRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
			rooms.POST("/:id/markclean", rc.MarkClean)
		}

		roomtypes := api.Group("/roomtypes")
		{
			roomtypes.GET("", tc.GetRoomTypes)
			roomtypes.POST("", tc.CreateRoomType)
			roomtypes.PUT("/:id", tc.UpdateRoomType)
			roomtypes.DELETE("/:id", tc.DeleteRoomType)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuest)
			guests.POST("/insertupdate", gc.InsertUpdateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/active", bc.GetActiveBookings)
			bookings.GET("/:id", bc.GetBooking)
			bookings.POST("/checkin", bc.CheckIn)
			bookings.POST("/:id/checkout", bc.CheckOut)
			bookings.POST("/:id/cancel", bc.CancelBooking)
		}

		charges := api.Group("/charges")
		{
			charges.GET("/booking/:id", cc.GetChargesByBooking)
			charges.POST("", cc.AddCharge)
			charges.DELETE("/:id", cc.DeleteCharge)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", ic.GetInvoices)
			invoices.GET("/:id", ic.GetInvoice)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", dc.GetStats)
			dashboard.GET("/rooms", dc.GetRoomBoard)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hotel", controllers.GetHotelSettings)
			settings.PUT("/hotel", controllers.UpdateHotelSettings)
		}
	}

	return r
}
