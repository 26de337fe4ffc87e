package model

import "gorm.io/gorm"

// AutoMigrate creates all tables in dependency order. Uniqueness and
// cascade rules live in the column tags, so the storage engine enforces
// them under concurrent writers.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Tag{},
		&Note{},
		&NoteLink{},
		&TaskMeta{},
	)
}
