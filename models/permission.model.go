package models

import (
	"gorm.io/gorm"
)

type Permission struct {
	gorm.Model
	UserID     uint `gorm:"not null;index"`
	Role       string
	Permission string `gorm:"type:varchar(255)"` // e.g., "view-all-results"
	IsDeleted  bool   `gorm:"default:false"`
}
