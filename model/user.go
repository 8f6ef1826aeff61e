package model

import "time"

// User 用户模型
type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Email     string    `gorm:"unique;not null;size:255" json:"email"`
	Password  string    `gorm:"not null;size:255" json:"-"` // bcrypt 哈希, 忽略JSON序列化
	AvatarURL string    `gorm:"size:255" json:"avatar"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`
}
