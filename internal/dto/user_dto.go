package dto

import "time"

type RegisterUserRequest struct {
	TelegramId int64   `json:"telegram_id" validate:"required,gt=0"`
	Username   *string `json:"username"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
}

type UpdateUserProfileRequest struct {
	TelegramId int64
	Username   *string `json:"username"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
}

type UserResponse struct {
	TelegramId  int64      `json:"telegram_id"`
	Username    *string    `json:"username"`
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	IsActive    bool       `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	DateJoined  time.Time  `json:"date_joined"`
	LastLogin   *time.Time `json:"last_login"`
}
