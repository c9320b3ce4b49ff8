package storage

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt `gorm:"softDelete:milli;uniqueIndex:udx_users_email;not null;default:0"`
}

type UserRecord struct {
	GormModel
	UserId   string `gorm:"size:64;not null;uniqueIndex"`                // 用户唯一索引
	Email    string `gorm:"size:255;not null;uniqueIndex:udx_users_email"` // 登录邮箱
	Name     string `gorm:"size:255;not null"`
	Password string `gorm:"size:255;not null"`
}

func (UserRecord) TableName() string {
	return "users"
}
