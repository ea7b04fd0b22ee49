package models

import (
	"gorm.io/gorm"
)

// Admin 是唯一能登入系統的身份，與 User 體系無關
type Admin struct {
	gorm.Model            // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	Email          string `gorm:"size:100;uniqueIndex;not null"`
	HashedPassword string `gorm:"not null"`
	IsActive       bool   `gorm:"not null;default:true"`
}
