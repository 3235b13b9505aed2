package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxCommentDepth is the nesting ceiling: replies at depth 0, 1 and 2 are
	// accepted, a reply that would land on depth 3 is rejected.
	MaxCommentDepth = 3

	// MaxCommentLength bounds the comment body.
	MaxCommentLength = 5000

	// MaxAuthorNameLength bounds the display name of anonymous commenters.
	MaxAuthorNameLength = 100
)

// Comment domain model. A comment belongs to exactly one article and
// optionally to a parent comment in the same article. Depth is derived from
// the parent chain, never stored.
type Comment struct {
	ID         string     `json:"id"`
	ArticleID  int64      `json:"article_id"`
	UserID     *int64     `json:"user_id,omitempty"`
	AuthorName *string    `json:"author_name,omitempty"`
	Content    string     `json:"content"`
	ParentID   *string    `json:"parent_id,omitempty"`
	RootID     *string    `json:"root_id,omitempty"`
	IsRead     bool       `json:"is_read"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	ReadBy     *int64     `json:"read_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// User 评论作者信息 (registered authors only)
	User *User `json:"user,omitempty"`
	// Article 所属文章快照 (filled for moderation listings)
	Article *Article `json:"article,omitempty"`
	// Replies 子评论列表
	Replies []*Comment `json:"replies,omitempty"`
}

// Anonymous reports whether the comment was submitted without an account.
func (c *Comment) Anonymous() bool {
	return c.UserID == nil
}

// CommentAuthor is the tagged author identity of a submission: either a
// registered user or an anonymous display name, never both and never neither.
// The zero value is invalid; use RegisteredAuthor or AnonymousAuthor.
type CommentAuthor struct {
	userID     int64
	name       string
	registered bool
	valid      bool
}

// RegisteredAuthor builds the identity of a logged-in commenter.
func RegisteredAuthor(userID int64) (CommentAuthor, error) {
	if userID <= 0 {
		return CommentAuthor{}, ErrBadParamInput
	}
	return CommentAuthor{userID: userID, registered: true, valid: true}, nil
}

// AnonymousAuthor builds the identity of a guest commenter from the display
// name supplied at submission time.
func AnonymousAuthor(name string) (CommentAuthor, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxAuthorNameLength {
		return CommentAuthor{}, ErrBadParamInput
	}
	return CommentAuthor{name: name, valid: true}, nil
}

// Valid reports whether the identity was built through a constructor.
func (a CommentAuthor) Valid() bool { return a.valid }

// Registered reports whether the identity references a user account.
func (a CommentAuthor) Registered() bool { return a.valid && a.registered }

// UserID returns the account id of a registered identity.
func (a CommentAuthor) UserID() (int64, bool) {
	if !a.Registered() {
		return 0, false
	}
	return a.userID, true
}

// Name returns the display name of an anonymous identity.
func (a CommentAuthor) Name() (string, bool) {
	if !a.valid || a.registered {
		return "", false
	}
	return a.name, true
}

// Actor is the capability-checked caller resolved by the auth layer.
// The core never verifies credentials itself.
type Actor struct {
	UserID int64
	Admin  bool
}

// Authenticated reports whether the actor maps to a logged-in user.
func (a Actor) Authenticated() bool { return a.UserID > 0 }

// CreateCommentInput carries a submission into the comment service.
type CreateCommentInput struct {
	ArticleID int64         `validate:"required,gt=0"`
	Content   string        `validate:"required"`
	ParentID  *string       `validate:"omitempty,uuid4"`
	Author    CommentAuthor `validate:"-"`
}

// ReadReceipt is the moderation snapshot returned by MarkRead.
type ReadReceipt struct {
	ID     string     `json:"id"`
	IsRead bool       `json:"is_read"`
	ReadAt *time.Time `json:"read_at,omitempty"`
	ReadBy *int64     `json:"read_by,omitempty"`
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, in CreateCommentInput) (*Comment, error)
	// Delete removes the comment and its whole reply subtree. Admin only.
	Delete(ctx context.Context, id string, actor Actor) error
	FetchByArticle(ctx context.Context, articleID int64, cursor string, limit int64) ([]*Comment, string, error)
}

// ModerationUsecase exposes the unread-tracking surface to the admin UI.
type ModerationUsecase interface {
	// MarkRead is idempotent: the first admin to mark a comment wins, later
	// calls return the persisted state untouched.
	MarkRead(ctx context.Context, id string, actor Actor) (*ReadReceipt, error)
	UnreadCount(ctx context.Context, actor Actor) (int64, error)
	// ListUnread returns unread comments newest-first, enriched with article
	// and author snapshots.
	ListUnread(ctx context.Context, actor Actor, limit int64) ([]*Comment, error)
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	// FetchByArticle loads the article's full comment set, used to walk
	// parent chains during depth validation.
	FetchByArticle(ctx context.Context, articleID int64) ([]*Comment, error)
	// FetchRoots 获取一级评论
	FetchRoots(ctx context.Context, articleID int64, cursor string, limit int64) ([]*Comment, error)
	// FetchReplies 获取指定根评论ID列表的所有子回复
	FetchReplies(ctx context.Context, rootIDs []string) ([]*Comment, error)
	// DeleteSubtree removes the comment and every transitive descendant in
	// one transaction and returns the number of rows removed.
	DeleteSubtree(ctx context.Context, id string) (int64, error)
	// MarkRead flips is_read once; an already-read row is left untouched.
	MarkRead(ctx context.Context, id string, adminID int64, at time.Time) (*Comment, error)
	// CountUnread counts unread comments, excluding those authored by
	// excludeUserID. Anonymous comments are always included.
	CountUnread(ctx context.Context, excludeUserID int64) (int64, error)
	// FetchUnread returns unread comments ordered by created_at descending.
	FetchUnread(ctx context.Context, limit int64) ([]*Comment, error)
	// ApplyCommentCounts refreshes the denormalized comment counter of the
	// given articles from the comment table.
	ApplyCommentCounts(ctx context.Context, articleIDs []int64) error
}
