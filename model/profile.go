package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// StringList is stored as a single comma-joined TEXT column but serializes
// to a JSON array. Entries are trimmed on scan.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	return strings.Join(s, ","), nil
}

func (s *StringList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if raw == "" {
		*s = StringList{}
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make(StringList, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	*s = out
	return nil
}

// SocialLinks 个人社交主页链接, 嵌入 Profile
type SocialLinks struct {
	Youtube   string `gorm:"size:255" json:"youtube,omitempty"`
	Twitter   string `gorm:"size:255" json:"twitter,omitempty"`
	Facebook  string `gorm:"size:255" json:"facebook,omitempty"`
	Linkedin  string `gorm:"size:255" json:"linkedin,omitempty"`
	Instagram string `gorm:"size:255" json:"instagram,omitempty"`
}

// Profile 开发者档案模型; 每个用户至多一份 (user_id 唯一索引)
type Profile struct {
	ID             uint64       `gorm:"primarykey" json:"id"`
	UserID         uint64       `gorm:"uniqueIndex;not null" json:"user_id"`
	Company        string       `gorm:"size:255" json:"company,omitempty"`
	Website        string       `gorm:"size:255" json:"website,omitempty"`
	Location       string       `gorm:"size:255" json:"location,omitempty"`
	Status         string       `gorm:"not null;size:100" json:"status"`
	Skills         StringList   `gorm:"type:text;not null" json:"skills"`
	Bio            string       `gorm:"type:text" json:"bio,omitempty"`
	GithubUsername string       `gorm:"size:100" json:"githubusername,omitempty"`
	Social         SocialLinks  `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     []Experience `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experience"`
	Education      []Education  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"education"`
	CreatedAt      time.Time    `json:"date"`
	UpdatedAt      time.Time    `json:"-"`
	User           User         `gorm:"foreignKey:UserID" json:"user,omitempty"` // 关联用户
}

// Experience 工作经历; 列表按插入顺序倒序呈现 (最新在前)
type Experience struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	ProfileID   uint64     `gorm:"not null;index" json:"-"`
	Title       string     `gorm:"not null;size:100" json:"title"`
	Company     string     `gorm:"not null;size:100" json:"company"`
	Location    string     `gorm:"size:255" json:"location,omitempty"`
	From        time.Time  `gorm:"not null" json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `gorm:"default:false" json:"current"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
}

// Education 教育经历
type Education struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	ProfileID    uint64     `gorm:"not null;index" json:"-"`
	School       string     `gorm:"not null;size:100" json:"school"`
	Degree       string     `gorm:"not null;size:100" json:"degree"`
	FieldOfStudy string     `gorm:"not null;size:100" json:"fieldofstudy"`
	From         time.Time  `gorm:"not null" json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `gorm:"default:false" json:"current"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
}
