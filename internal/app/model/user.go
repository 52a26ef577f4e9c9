package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleManager UserRole = "manager"
	RoleAdmin   UserRole = "admin"
)

// User is a back-office account. There is no self-service registration;
// accounts are seeded or created by an admin.
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Role         UserRole       `gorm:"type:varchar(20);default:'manager'" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
