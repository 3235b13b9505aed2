package response

import (
	"github.com/inkwell-blog/inkwell/domain"
)

const DateTimeFormat = "2006-01-02 15:04:05"

type Article struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	UserName  string `json:"user_name"`
	Comments  int64  `json:"comments"`
	UpdatedAt string `json:"updated_at"`
	CreatedAt string `json:"created_at"`
}

// ArticleSummary is the short article reference used in moderation listings.
type ArticleSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// NewArticleFromDomain: Domain -> Response
func NewArticleFromDomain(a *domain.Article) Article {
	return Article{
		ID:        a.ID,
		Title:     a.Title,
		Slug:      a.Slug,
		Content:   a.Content,
		UserName:  a.User.Name,
		Comments:  a.Comments,
		UpdatedAt: a.UpdatedAt.Format(DateTimeFormat),
		CreatedAt: a.CreatedAt.Format(DateTimeFormat),
	}
}
