package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	Name      string    `json:"name" gorm:"default:''"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"default:'student'"` // student, admin
	LastLogin time.Time `json:"last_login" gorm:"default:NULL"`
}
