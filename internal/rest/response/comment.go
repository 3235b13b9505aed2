package response

import "github.com/inkwell-blog/inkwell/domain"

type Comment struct {
	ID         string  `json:"id"`
	ArticleID  int64   `json:"article_id"`
	UserID     *int64  `json:"user_id,omitempty"`
	AuthorName *string `json:"author_name,omitempty"`
	Content    string  `json:"content"`
	ParentID   *string `json:"parent_id,omitempty"`
	CreatedAt  string  `json:"created_at"`

	// User 评论作者信息
	User *User `json:"user,omitempty"`
	// Replies 子评论列表
	Replies []*Comment `json:"replies,omitempty"`
}

func NewSingleCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	return &Comment{
		ID:         c.ID,
		ArticleID:  c.ArticleID,
		UserID:     c.UserID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		ParentID:   c.ParentID,
		CreatedAt:  c.CreatedAt.Format(DateTimeFormat),
		User:       NewUserFromDomain(c.User),
		Replies:    nil,
	}
}

// NewCommentFromDomain: Domain -> Response, replies nested recursively up to
// the depth ceiling.
func NewCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	root := NewSingleCommentFromDomain(c)
	if len(c.Replies) > 0 {
		replies := make([]*Comment, 0, len(c.Replies))
		for _, r := range c.Replies {
			replies = append(replies, NewCommentFromDomain(r))
		}
		root.Replies = replies
	}
	return root
}

// UnreadComment is a moderation listing row: the comment plus the article
// reference and, for registered authors, a user snapshot.
type UnreadComment struct {
	ID         string          `json:"id"`
	Content    string          `json:"content"`
	AuthorName *string         `json:"author_name,omitempty"`
	CreatedAt  string          `json:"created_at"`
	Article    *ArticleSummary `json:"article,omitempty"`
	User       *User           `json:"user,omitempty"`
}

func NewUnreadCommentFromDomain(c *domain.Comment) *UnreadComment {
	if c == nil {
		return nil
	}
	res := &UnreadComment{
		ID:         c.ID,
		Content:    c.Content,
		AuthorName: c.AuthorName,
		CreatedAt:  c.CreatedAt.Format(DateTimeFormat),
		User:       NewUserFromDomain(c.User),
	}
	if c.Article != nil {
		res.Article = &ArticleSummary{
			ID:    c.Article.ID,
			Title: c.Article.Title,
			Slug:  c.Article.Slug,
		}
	}
	return res
}
