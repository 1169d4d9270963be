package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitPostgresql opens the connection pool. A nil return means the backing
// store is unreachable; callers run in degraded mode instead of crashing,
// because every store in this app has a documented non-persistent fallback.
func InitPostgresql(cfg *Config) *gorm.DB {
	if cfg.PostgresURL == "" {
		log.Println("POSTGRES_URL not set, running without persistence")
		return nil
	}

	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
