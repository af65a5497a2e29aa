package database

import (
	"fmt"

	"gorm.io/gorm"
)

// RunMigrations executes the migrations AutoMigrate cannot express
func RunMigrations(db *gorm.DB) error {
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// createIndexes creates database indexes
func createIndexes(db *gorm.DB) error {
	// Latest snapshot per case
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_case_snapshots_latest
		ON case_snapshots(case_id, captured_at)
	`).Error; err != nil {
		return err
	}

	// Update feed per case
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_case_updates_feed
		ON case_updates(case_id, detected_at)
	`).Error; err != nil {
		return err
	}

	// Stable-index party lookups
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_case_parties_source
		ON case_parties(case_id, source_index)
	`).Error; err != nil {
		return err
	}

	// Sync history
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_sync_runs_time
		ON sync_runs(started_at)
	`).Error; err != nil {
		return err
	}

	return nil
}
