package service

import (
	"errors"

	"tg-notegraph-be/internal/apperror"

	"gorm.io/gorm"
)

// The database handles are opened with TranslateError, so driver-specific
// constraint failures surface as gorm sentinels. The services turn those
// into the apperror taxonomy; raw storage errors never cross this layer.

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isDuplicateKeyTaxonomy(err error) bool {
	return errors.Is(err, apperror.ErrDuplicateIdentity)
}
