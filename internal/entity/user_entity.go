package entity

import (
	"strconv"
	"time"
)

// User is identified by its Telegram numeric ID. There is no surrogate key:
// the Telegram ID is the primary key and the external identity at once.
type User struct {
	TelegramId  int64
	Username    *string
	FirstName   *string
	LastName    *string
	IsActive    bool
	IsStaff     bool
	IsSuperuser bool
	DateJoined  time.Time
	LastLogin   *time.Time
}

// DisplayName mirrors the presentation rule of the bot: username when set,
// otherwise the numeric ID.
func (u *User) DisplayName() string {
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	return strconv.FormatInt(u.TelegramId, 10)
}
