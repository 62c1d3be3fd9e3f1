package config

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"frontdesk-backend/models"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// TaxRate reads the checkout tax rate from TAX_RATE (a fraction, e.g.
// "0.18"). Falls back to 18% on anything unparsable.
func TaxRate() float64 {
	raw := envOrDefault("TAX_RATE", "0.18")
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate <= 0 || rate >= 1 {
		logrus.Warnf("invalid TAX_RATE %q, using 0.18", raw)
		return 0.18
	}
	return rate
}

// ensureDatabase creates the schema with the raw mysql driver before GORM
// connects, so a fresh environment boots without manual setup.
func ensureDatabase(user, pass, host, port, name string) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/", user, pass, host, port)
	raw, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("open mysql: %w", err)
	}
	defer raw.Close()

	_, err = raw.Exec("CREATE DATABASE IF NOT EXISTS " + name + " CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci")
	if err != nil {
		return fmt.Errorf("create database %s: %w", name, err)
	}
	return nil
}

// ConnectDatabase opens the GORM connection, runs migrations and seeds
// baseline records. Sets the package-level DB on success.
func ConnectDatabase() error {
	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASSWORD", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	name := envOrDefault("DB_NAME", "frontdesk")

	if err := ensureDatabase(user, pass, host, port, name); err != nil {
		return err
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("access sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.HotelSetting{},
		&models.RoomType{},
		&models.Room{},
		&models.Guest{},
		&models.Booking{},
		&models.Charge{},
		&models.Payment{},
		&models.Invoice{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	DB = db
	SeedDatabase()
	return nil
}

// SeedDatabase inserts baseline records on an empty schema. Idempotent:
// every block checks for existing rows first.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			logrus.Warnf("failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Front Desk Admin",
				Username: envOrDefault("ADMIN_USERNAME", "admin@hotel.local"),
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				logrus.Warnf("failed to seed default admin: %v", err)
			} else {
				logrus.Info("default admin seeded")
			}
		}
	}

	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{Name: "Standard", BaseRate: 2000, MaxGuests: 2, Amenities: "AC, TV, WiFi"},
			{Name: "Superior", BaseRate: 3000, MaxGuests: 3, Amenities: "AC, TV, WiFi, Mini Bar"},
			{Name: "Deluxe", BaseRate: 4500, MaxGuests: 4, Amenities: "AC, TV, WiFi, Mini Bar, Bathtub"},
			{Name: "Suite", BaseRate: 7000, MaxGuests: 5, Amenities: "AC, TV, WiFi, Mini Bar, Living Room"},
		}
		if err := DB.Create(&roomTypes).Error; err != nil {
			logrus.Warnf("failed to seed room types: %v", err)
		} else {
			logrus.Info("room types seeded")
		}
	}

	var settingCount int64
	DB.Model(&models.HotelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.HotelSetting{Name: "Hotel"}
		if err := DB.Create(&setting).Error; err != nil {
			logrus.Warnf("failed to seed hotel settings: %v", err)
		}
	}
}
