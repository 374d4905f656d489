package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hotel_booking")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection, migrates the schema and seeds
// initial data. The handle is returned for injection; there is no package
// global.
func ConnectDatabase() (*gorm.DB, error) {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	SeedDatabase(db)
	return db, nil
}

// Migrate runs AutoMigrate in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Room{},
		&models.Booking{},
		&models.Payment{},
	)
}

// SeedDatabase creates the default admin account and sample rooms when their
// tables are empty. Failures are logged, not fatal.
func SeedDatabase(db *gorm.DB) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		password := utils.EnvOrDefault("ADMIN_PASSWORD", "password123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Username: "admin",
				Email:    "admin@hotel.com",
				Password: string(hash),
				IsAdmin:  true,
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Type: models.RoomTypeSingle, Price: 89.99, Description: "Cozy single room with city view", Amenities: datatypes.JSON(`["WiFi","TV","Air Conditioning"]`)},
			{RoomNumber: "102", Type: models.RoomTypeDouble, Price: 129.99, Description: "Spacious double room with queen bed", Amenities: datatypes.JSON(`["WiFi","TV","Air Conditioning","Mini Bar"]`)},
			{RoomNumber: "103", Type: models.RoomTypeSuite, Price: 249.99, Description: "Luxury suite with separate living area", Amenities: datatypes.JSON(`["WiFi","TV","Air Conditioning","Mini Bar","Jacuzzi"]`)},
			{RoomNumber: "201", Type: models.RoomTypeSingle, Price: 89.99, Description: "Single room on second floor", Amenities: datatypes.JSON(`["WiFi","TV","Air Conditioning"]`)},
			{RoomNumber: "202", Type: models.RoomTypeDouble, Price: 129.99, Description: "Double room with garden view", Amenities: datatypes.JSON(`["WiFi","TV","Air Conditioning","Mini Bar"]`)},
			{RoomNumber: "203", Type: models.RoomTypeSuite, Price: 299.99, Description: "Premium suite with balcony", Amenities: datatypes.JSON(`["WiFi","TV","Air Conditioning","Mini Bar","Jacuzzi","Balcony"]`)},
			{RoomNumber: "301", Type: models.RoomTypeSingle, Price: 99.99, Status: models.RoomStatusMaintenance, Description: "Single room currently under maintenance", Amenities: datatypes.JSON(`["WiFi","TV","Air Conditioning"]`)},
			{RoomNumber: "302", Type: models.RoomTypeDouble, Price: 149.99, Description: "Deluxe double room with ocean view", Amenities: datatypes.JSON(`["WiFi","TV","Air Conditioning","Mini Bar","Ocean View"]`)},
		}
		for i := range rooms {
			if rooms[i].Status == "" {
				rooms[i].Status = models.RoomStatusAvailable
			}
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Sample rooms seeded")
		}
	}
}
