package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"frontdesk-backend/config"
	"frontdesk-backend/controllers"
	"frontdesk-backend/routes"
	"frontdesk-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logrus.Fatal("JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		logrus.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	logrus.Info("database connection established, migrations applied")

	taxRate := config.TaxRate()

	// Services
	invoiceService := services.NewInvoiceService(db)
	roomService := services.NewRoomService(db)
	roomTypeService := services.NewRoomTypeService(db)
	guestService := services.NewGuestService(db)
	bookingService := services.NewBookingService(db, invoiceService, taxRate)
	chargeService := services.NewChargeService(db)
	dashboardService := services.NewDashboardService(db)

	// Controllers
	authController := controllers.NewAuthController(jwtSecret)
	roomController := controllers.NewRoomController(roomService)
	roomTypeController := controllers.NewRoomTypeController(roomTypeService)
	guestController := controllers.NewGuestController(guestService)
	bookingController := controllers.NewBookingController(bookingService)
	chargeController := controllers.NewChargeController(chargeService)
	invoiceController := controllers.NewInvoiceController(invoiceService)
	dashboardController := controllers.NewDashboardController(dashboardService)

	router := routes.SetupRouter(
		authController,
		roomController,
		roomTypeController,
		guestController,
		bookingController,
		chargeController,
		invoiceController,
		dashboardController,
		jwtSecret,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Warn("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}

	logrus.Info("server stopped gracefully")
}
