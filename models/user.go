package models

import (
	"time"
)

const (
	RoleUser       = 0
	RoleSuperAdmin = 1
	RoleAdmin      = 2
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string    `gorm:"default:New User" json:"name"`
	Email     string    `gorm:"unique" json:"email"`
	Avatar    string    `json:"avatar"`
	Role      int       `gorm:"default:0" json:"role"`   // 1: SuperAdmin - 2: Admin - 0: User
	Status    int       `gorm:"default:0" json:"status"` // 0: active - 1: ban
}

func IsAdminRole(role int) bool {
	return role == RoleSuperAdmin || role == RoleAdmin
}
