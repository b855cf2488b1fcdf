package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"pousada-backend/models"

	driver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}
	pass, _ := u.User.Password()

	cfg := driver.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd = pass
	cfg.Net = "tcp"
	cfg.Addr = host + ":" + port
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	for k, vs := range u.Query() {
		if len(vs) > 0 {
			cfg.Params[k] = vs[0]
		}
	}

	return cfg.FormatDSN(), nil
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

	cfg := driver.NewConfig()
	cfg.User = EnvOrDefault("DB_USER", "root")
	cfg.Passwd = EnvOrDefault("DB_PASS", "")
	cfg.Net = "tcp"
	cfg.Addr = EnvOrDefault("DB_HOST", "127.0.0.1") + ":" + EnvOrDefault("DB_PORT", "3306")
	cfg.DBName = EnvOrDefault("DB_NAME", "pousada_db")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN(), nil
}

// SeedDatabase creates the settings row and a starter set of accommodations
// on an empty database. Idempotent: it only inserts when the tables are empty.
func SeedDatabase() {
	var settingCount int64
	DB.Model(&models.HotelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.HotelSetting{
			Name:           "Pousada",
			CurrencySymbol: "R$",
			DateLayout:     "02/01/2006",
			CopyShowNotes:  true,
			CopyShowPrice:  true,
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed hotel settings: %v", err)
		} else {
			log.Println("Hotel settings seeded")
		}
	}

	var accCount int64
	DB.Model(&models.Accommodation{}).Count(&accCount)
	if accCount == 0 {
		accommodations := []models.Accommodation{
			{Name: "Chalé 1", RoomNumber: "01", Category: models.CategoryStandard, Capacity: 2},
			{Name: "Chalé 2", RoomNumber: "02", Category: models.CategoryLuxo, Capacity: 3},
			{Name: "Chalé 3", RoomNumber: "03", Category: models.CategorySuperLuxo, Capacity: 4},
			{Name: "Suíte Master", RoomNumber: "04", Category: models.CategoryMaster, Capacity: 4},
		}
		if err := DB.Create(&accommodations).Error; err != nil {
			log.Printf("warning: failed to seed accommodations: %v", err)
		} else {
			log.Println("Accommodations seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
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
		return err
	}

	DB = db

	// AutoMigrate in parent->child order so FKs resolve.
	if err := DB.AutoMigrate(
		&models.HotelSetting{},
		&models.Accommodation{},
		&models.PricePeriod{},
		&models.PriceEntry{},
		&models.Guest{},
		&models.Reservation{},
		&models.MaintenanceTicket{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
