package database

import (
	"fmt"

	"gorm.io/gorm"
)

type indexDef struct {
	name string
	sql  string
}

// Query-critical indexes with identical SQL on every driver.
var helperIndexes = []indexDef{
	{
		"idx_okrs_team_quarter",
		"CREATE INDEX idx_okrs_team_quarter ON okrs (team_id, quarter_year, quarter_quarter)",
	},
	{
		"idx_okrs_owner_id",
		"CREATE INDEX idx_okrs_owner_id ON okrs (owner_id)",
	},
	{
		"idx_key_results_okr_id",
		"CREATE INDEX idx_key_results_okr_id ON key_results (okr_id)",
	},
	{
		"idx_reviews_okr_created",
		"CREATE INDEX idx_reviews_okr_created ON reviews (okr_id, created_at)",
	},
	{
		"idx_invitations_team_email",
		"CREATE INDEX idx_invitations_team_email ON invitations (team_id, invited_email)",
	},
}

// AddIndexes adds indexes that AutoMigrate does not cover and installs the
// duplicate guard that keeps at most one pending invitation per (team,
// email). The guard is the serialization point for concurrent invites, so it
// must exist on every driver.
func AddIndexes(db *gorm.DB, driver string) error {
	if err := addPendingInvitationGuard(db, driver); err != nil {
		return err
	}

	for _, idx := range helperIndexes {
		if err := createIndexOnce(db, driver, idx); err != nil {
			return err
		}
	}

	return nil
}

// addPendingInvitationGuard enforces pending-invitation uniqueness at the
// storage boundary. Postgres and sqlite get a partial unique index. Mysql
// has no partial indexes, so it gets a stored generated column that holds
// (team, email) while the row is a live pending invitation and falls back to
// the primary key otherwise, plus a unique index over it.
func addPendingInvitationGuard(db *gorm.DB, driver string) error {
	if driver == "mysql" {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM information_schema.columns
			WHERE table_schema = DATABASE()
			  AND table_name = 'invitations'
			  AND column_name = 'pending_key'
		`).Scan(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check pending_key column: %w", err)
		}

		if count == 0 {
			err := db.Exec(`
				ALTER TABLE invitations
				ADD COLUMN pending_key VARCHAR(300)
				AS (IF(status = 'pending' AND deleted_at IS NULL,
					CONCAT(team_id, ':', invited_email), id)) STORED
			`).Error
			if err != nil {
				return fmt.Errorf("failed to add pending_key column: %w", err)
			}
		}

		return createIndexOnce(db, driver, indexDef{
			"uniq_invitations_pending",
			"CREATE UNIQUE INDEX uniq_invitations_pending ON invitations (pending_key)",
		})
	}

	return createIndexOnce(db, driver, indexDef{
		"uniq_invitations_pending",
		"CREATE UNIQUE INDEX uniq_invitations_pending ON invitations (team_id, invited_email) " +
			"WHERE status = 'pending' AND deleted_at IS NULL",
	})
}

func createIndexOnce(db *gorm.DB, driver string, idx indexDef) error {
	exists, err := indexExists(db, driver, idx.name)
	if err != nil {
		return fmt.Errorf("failed to check index %s: %w", idx.name, err)
	}
	if exists {
		return nil
	}

	if err := db.Exec(idx.sql).Error; err != nil {
		return fmt.Errorf("failed to create index %s: %w", idx.name, err)
	}
	return nil
}

func indexExists(db *gorm.DB, driver, name string) (bool, error) {
	var count int64
	var err error

	switch driver {
	case "postgres":
		err = db.Raw("SELECT COUNT(*) FROM pg_indexes WHERE indexname = ?", name).
			Scan(&count).Error
	case "mysql":
		err = db.Raw(`
			SELECT COUNT(*)
			FROM information_schema.statistics
			WHERE table_schema = DATABASE() AND index_name = ?
		`, name).Scan(&count).Error
	case "sqlite":
		err = db.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = ?", name).
			Scan(&count).Error
	default:
		return false, fmt.Errorf("unsupported database driver %q", driver)
	}

	return count > 0, err
}
