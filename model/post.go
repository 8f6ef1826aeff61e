package model

import "time"

// Post 动态模型; Name/AvatarURL 为发帖时的作者快照
type Post struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `gorm:"size:100" json:"name"`
	AvatarURL string    `gorm:"size:255" json:"avatar"`
	Likes     []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes"`
	Comments  []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"`
	CreatedAt time.Time `json:"date"`
}

// Like marks one user's like of one post. The composite unique index makes
// a duplicate like a constraint violation rather than an application race.
type Like struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_post_user" json:"-"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_post_user" json:"user_id"`
	CreatedAt time.Time `json:"-"`
}

// Comment 评论模型; 同样携带作者快照
type Comment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	PostID    uint64    `gorm:"not null;index" json:"-"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `gorm:"size:100" json:"name"`
	AvatarURL string    `gorm:"size:255" json:"avatar"`
	CreatedAt time.Time `json:"date"`
}
