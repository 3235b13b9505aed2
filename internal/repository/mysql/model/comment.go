package model

import (
	"time"

	"github.com/inkwell-blog/inkwell/domain"
)

type Comment struct {
	ID         string     `gorm:"type:char(36);primaryKey"`
	ArticleID  int64      `gorm:"column:article_id;not null;index"`
	UserID     *int64     `gorm:"column:user_id"`
	AuthorName *string    `gorm:"column:author_name;type:varchar(100)"`
	Content    string     `gorm:"type:text;not null"`
	ParentID   *string    `gorm:"column:parent_id;type:char(36);index"`
	RootID     *string    `gorm:"column:root_id;type:char(36);index"`
	IsRead     bool       `gorm:"column:is_read;not null;default:false;index"`
	ReadAt     *time.Time `gorm:"column:read_at;type:datetime"`
	ReadBy     *int64     `gorm:"column:read_by"`
	CreatedAt  time.Time  `gorm:"type:datetime;index"`
	UpdatedAt  time.Time  `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:         c.ID,
		ArticleID:  c.ArticleID,
		UserID:     c.UserID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		ParentID:   c.ParentID,
		RootID:     c.RootID,
		IsRead:     c.IsRead,
		ReadAt:     c.ReadAt,
		ReadBy:     c.ReadBy,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:         m.ID,
		ArticleID:  m.ArticleID,
		UserID:     m.UserID,
		AuthorName: m.AuthorName,
		Content:    m.Content,
		ParentID:   m.ParentID,
		RootID:     m.RootID,
		IsRead:     m.IsRead,
		ReadAt:     m.ReadAt,
		ReadBy:     m.ReadBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
