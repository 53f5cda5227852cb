package models

import (
	"time"
)

// User - учетная запись в Postgres. Теги и предпочтения живут в Mongo
// и ссылаются на нее по user_Id.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       string     `gorm:"column:user_id;uniqueIndex;size:64;not null" json:"user_Id"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"size:16;not null" json:"role"`
	Bio          *string    `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt    time.Time  `json:"created_At"`
	UpdatedAt    *time.Time `json:"updated_At,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// RolePrefix возвращает префикс роли из user_Id ("model123" -> "model").
// Пустая строка, если формат не распознан.
func (u *User) RolePrefix() string {
	m := UserIDPattern.FindStringSubmatch(u.UserID)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// CreateUserRequest - тело запроса регистрации.
type CreateUserRequest struct {
	UserID   string  `json:"user_Id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     string  `json:"role" binding:"required,oneof=model brand"`
	Bio      *string `json:"bio,omitempty"`
}

// UpdateUserRequest - частичное обновление профиля.
type UpdateUserRequest struct {
	Name *string `json:"name,omitempty"`
	Bio  *string `json:"bio,omitempty"`
}

// LoginRequest - тело запроса логина.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse - ответ на логин/регистрацию.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
