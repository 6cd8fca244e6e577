package db

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"endocare/migrations"
	"gorm.io/gorm"
)

// applyEmbeddedMigrations runs every embedded *.sql file that has not been
// applied yet, in filename order. Each file runs in one transaction and is
// recorded in schema_migrations under its filename, so reopening the same
// database is a no-op.
func applyEmbeddedMigrations(database *gorm.DB) error {
	const createTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(createTableSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	names, err := fs.Glob(migrations.Files, "*.sql")
	if err != nil {
		return fmt.Errorf("list embedded migrations: %w", err)
	}
	sort.Strings(names)

	var appliedVersions []string
	if err := database.Table("schema_migrations").Pluck("version", &appliedVersions).Error; err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}
	applied := make(map[string]bool, len(appliedVersions))
	for _, version := range appliedVersions {
		applied[version] = true
	}

	for _, name := range names {
		if applied[name] {
			continue
		}
		rawSQL, err := fs.ReadFile(migrations.Files, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if err := applyMigration(database, name, string(rawSQL)); err != nil {
			return err
		}
	}

	return nil
}

func applyMigration(database *gorm.DB, name, rawSQL string) error {
	return database.Transaction(func(tx *gorm.DB) error {
		for _, rawStatement := range strings.Split(rawSQL, ";") {
			statement := strings.TrimSpace(rawStatement)
			if statement == "" {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute migration %s: %w", name, err)
			}
		}
		if err := tx.Exec(
			`INSERT INTO schema_migrations(version) VALUES (?)`, name,
		).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		return nil
	})
}
