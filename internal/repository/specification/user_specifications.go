package specification

import "gorm.io/gorm"

type ByTelegramID struct {
	TelegramID int64
}

func (s ByTelegramID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("telegram_id = ?", s.TelegramID)
}
