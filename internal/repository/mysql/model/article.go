package model

import (
	"time"

	"github.com/inkwell-blog/inkwell/domain"
)

type Article struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(120);not null"`
	Slug      string    `gorm:"type:varchar(160);not null;uniqueIndex"`
	Content   string    `gorm:"type:longtext;not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Comments  int64     `gorm:"default:0"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Article) TableName() string {
	return "article"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:        m.ID,
		Title:     m.Title,
		Slug:      m.Slug,
		Content:   m.Content,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
		User: domain.User{
			ID: m.UserID,
		},
		Comments: m.Comments,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:        a.ID,
		Title:     a.Title,
		Slug:      a.Slug,
		Content:   a.Content,
		UserID:    a.User.ID,
		UpdatedAt: a.UpdatedAt,
		CreatedAt: a.CreatedAt,
		Comments:  a.Comments,
	}
}
