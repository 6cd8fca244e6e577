package db

import (
	"path/filepath"
	"testing"

	"endocare/internal/models"
)

func openTestDB(t *testing.T) *Repositories {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "endocare_test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	return NewRepositories(database)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "endocare_test.db")

	if _, err := OpenSQLite(path); err != nil {
		t.Fatalf("first open: %v", err)
	}
	// Reopening must not reapply migrations or fail on existing tables.
	if _, err := OpenSQLite(path); err != nil {
		t.Fatalf("second open: %v", err)
	}
}

func TestSleepRepositoryInsertAndListNewestFirst(t *testing.T) {
	repos := openTestDB(t)

	older := models.SleepLog{Date: "2025-08-10T07:30:00Z", Duration: 6, Quality: 40}
	newer := models.SleepLog{Date: "2025-08-11T07:30:00Z", Duration: 8, Quality: 80}
	if err := repos.Sleep.Insert(&older); err != nil {
		t.Fatalf("insert older: %v", err)
	}
	if err := repos.Sleep.Insert(&newer); err != nil {
		t.Fatalf("insert newer: %v", err)
	}
	if older.ID == 0 || newer.ID == 0 {
		t.Fatal("inserted ids not backfilled")
	}

	entries, err := repos.Sleep.ListAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Date != newer.Date {
		t.Errorf("expected newest first, got %q", entries[0].Date)
	}
}

func TestDietRepositoryRoundTrip(t *testing.T) {
	repos := openTestDB(t)

	entry := models.DietLog{Meal: "lunch", Date: "2025-08-11T08:00:00Z", Items: "bacon,eggs", Notes: "quick"}
	if err := repos.Diet.Insert(&entry); err != nil {
		t.Fatalf("insert: %v", err)
	}

	entries, err := repos.Diet.ListAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Items != "bacon,eggs" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestSymptomRepositoryRoundTrip(t *testing.T) {
	repos := openTestDB(t)

	entry := models.SymptomLog{Date: "2025-08-11T12:00:00Z", Nausea: 7, Fatigue: 8, Pain: 6}
	if err := repos.Symptoms.Insert(&entry); err != nil {
		t.Fatalf("insert: %v", err)
	}

	entries, err := repos.Symptoms.ListAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Nausea != 7 {
		t.Fatalf("entries = %+v", entries)
	}
}
