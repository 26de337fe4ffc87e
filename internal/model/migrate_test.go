package model

import (
	"path/filepath"
	"testing"

	"tg-notegraph-be/pkg/database"

	"github.com/stretchr/testify/assert"
)

func TestAutoMigrate(t *testing.T) {
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "migrate_test.db"))
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}

	assert.NoError(t, AutoMigrate(db))

	migrator := db.Migrator()
	for _, table := range []string{"users", "notes", "tags", "note_links", "task_meta", "notes_tags"} {
		assert.True(t, migrator.HasTable(table), "expected table %s to exist", table)
	}

	// the storage engine, not the application, holds the uniqueness rules
	assert.True(t, migrator.HasIndex(&NoteLink{}, "idx_note_links_edge"))
	assert.True(t, migrator.HasIndex(&Tag{}, "Name"))

	// migration is idempotent
	assert.NoError(t, AutoMigrate(db))
}
