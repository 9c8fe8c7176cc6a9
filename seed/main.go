package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lac-hong-legacy/folio_api/model"
)

// Creates the admin account the API authenticates against. Run once
// after the database is up; re-running with -reset rotates the password.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		username = flag.String("username", "", "Admin username (overrides ADMIN_USERNAME env var)")
		password = flag.String("password", "", "Admin password (overrides ADMIN_PASSWORD env var)")
		reset    = flag.Bool("reset", false, "Reset the password if the admin already exists")
	)
	flag.Parse()

	adminUser := *username
	if adminUser == "" {
		adminUser = os.Getenv("ADMIN_USERNAME")
	}
	adminPass := *password
	if adminPass == "" {
		adminPass = os.Getenv("ADMIN_PASSWORD")
	}
	if adminUser == "" || adminPass == "" {
		log.Fatal("Admin credentials required: pass -username/-password or set ADMIN_USERNAME/ADMIN_PASSWORD")
	}
	if len(adminPass) < 8 {
		log.Fatal("Admin password must be at least 8 characters")
	}

	db, err := gorm.Open(postgres.Open(databaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&model.Admin{}); err != nil {
		log.Fatalf("Failed to migrate admin table: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	var existing model.Admin
	err = db.Where("username = ?", adminUser).First(&existing).Error
	switch {
	case err == nil:
		if !*reset {
			log.Fatalf("Admin %q already exists; pass -reset to rotate the password", adminUser)
		}
		existing.Password = string(hash)
		if err := db.Save(&existing).Error; err != nil {
			log.Fatalf("Failed to update admin: %v", err)
		}
		log.Printf("Password rotated for admin %q", adminUser)
	case errors.Is(err, gorm.ErrRecordNotFound):
		id, idErr := uuid.NewV7()
		if idErr != nil {
			log.Fatalf("Failed to generate admin id: %v", idErr)
		}
		admin := model.Admin{
			ID:       id.String(),
			Username: adminUser,
			Password: string(hash),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		log.Printf("Admin %q created", adminUser)
	default:
		log.Fatalf("Failed to look up admin: %v", err)
	}
}

func databaseDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASSWORD", "postgres")
	dbname := envOr("DB_NAME", "folio_api")
	sslmode := envOr("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
