package database

import (
	"fmt"
	"log"
	"os"
	"upskill/config"
	"upskill/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	cfg := config.AppConfig

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	// TranslateError maps driver unique-violation errors onto
	// gorm.ErrDuplicatedKey, which the enroll path relies on
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(0) // No timeout

	if err := Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// Migrate performs database migrations. Exported so tests can migrate
// their own in-memory instance.
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Course{},
		&models.Enrollment{},
		&models.Module{},
		&models.QuizQuestion{},
		&models.QuizResult{},
		&models.Rating{},
	)
	if err != nil {
		return err
	}

	log.Println("Migrations completed successfully.")
	return nil
}
