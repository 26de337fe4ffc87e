package scope

import "gorm.io/gorm"

// Soft delete here is an explicit boolean column, not gorm.DeletedAt:
// deleted notes stay visible to queries unless a caller opts in to the
// filter. This scope makes the opt-in explicit at call sites.

func ExcludeSoftDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}
