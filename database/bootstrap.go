package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"krishi/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&entities.FarmingPlan{}); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	// The cleanup sweep and active-plan listing both filter on
	// (user_id, cleanup_date); keep that path indexed.
	if err := db.Exec(
		`CREATE INDEX IF NOT EXISTS idx_farming_plans_user_cleanup ON farming_plans(user_id, cleanup_date)`,
	).Error; err != nil {
		log.Fatalf("create index: %v", err)
	}

	return db
}
