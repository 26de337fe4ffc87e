package model

import (
	"time"
)

type User struct {
	TelegramId  int64     `gorm:"primaryKey;autoIncrement:false"`
	Username    *string   `gorm:"type:varchar(255)"`
	FirstName   *string   `gorm:"type:varchar(255)"`
	LastName    *string   `gorm:"type:varchar(255)"`
	IsActive    bool      `gorm:"not null;default:true"`
	IsStaff     bool      `gorm:"not null;default:false"`
	IsSuperuser bool      `gorm:"not null;default:false"`
	DateJoined  time.Time `gorm:"autoCreateTime"`
	LastLogin   *time.Time
}

func (User) TableName() string {
	return "users"
}
