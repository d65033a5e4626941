package database

import (
	"log"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Anamitraroy22/school-management/config"
	"github.com/Anamitraroy22/school-management/models"
)

var (
	db      *gorm.DB
	once    sync.Once
	initErr error
)

// Get returns the process-wide connection pool, opening it on first use.
// The pool is shared for the process lifetime and has no explicit teardown.
func Get(cfg *config.Config) (*gorm.DB, error) {
	once.Do(func() {
		conn, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			initErr = err
			return
		}

		sqlDB, err := conn.DB()
		if err != nil {
			initErr = err
			return
		}
		// 10 concurrent connections; callers queue when saturated.
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)

		db = conn
		log.Println("database connection pool initialized")
	})
	return db, initErr
}

// EnsureSchema migrates the schools table and seeds sample rows when the
// table is empty. Best effort: failures are logged, never fatal, so the
// server can still run against a pre-existing schema.
func EnsureSchema(db *gorm.DB) bool {
	if err := db.AutoMigrate(&models.School{}); err != nil {
		log.Printf("schema migration failed: %v", err)
		return false
	}

	var count int64
	if err := db.Model(&models.School{}).Count(&count).Error; err != nil {
		log.Printf("schema row-count check failed: %v", err)
		return false
	}
	if count > 0 {
		log.Println("schools table already has data, skipping seed")
		return true
	}

	seeds := seedSchools()
	if err := db.Create(&seeds).Error; err != nil {
		log.Printf("seeding schools failed: %v", err)
		return false
	}
	log.Printf("%d sample schools inserted", len(seeds))
	return true
}
