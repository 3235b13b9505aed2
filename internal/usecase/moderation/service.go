package moderation

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inkwell-blog/inkwell/domain"
)

const (
	// DefaultUnreadLimit is the page size when the caller passes none.
	DefaultUnreadLimit = 20
	// MaxUnreadLimit caps a single unread listing.
	MaxUnreadLimit = 100
)

// service tracks per-comment read state for the admin moderation surface.
type service struct {
	commentRepo domain.CommentRepository
	articleRepo domain.ArticleRepository
	userRepo    domain.UserRepository
}

var _ domain.ModerationUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, articleRepo domain.ArticleRepository, userRepo domain.UserRepository) *service {
	return &service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

func requireAdmin(actor domain.Actor) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthorized
	}
	if !actor.Admin {
		return domain.ErrForbidden
	}
	return nil
}

// MarkRead acknowledges a comment. Idempotent: re-marking an already-read
// comment returns the original receipt, the first writer wins.
func (s *service) MarkRead(ctx context.Context, id string, actor domain.Actor) (*domain.ReadReceipt, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	c, err := s.commentRepo.MarkRead(ctx, id, actor.UserID, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return nil, err
		}
		logrus.Errorf("failed to mark comment %s read: %v", id, err)
		return nil, domain.ErrInternalServerError
	}

	return &domain.ReadReceipt{
		ID:     c.ID,
		IsRead: c.IsRead,
		ReadAt: c.ReadAt,
		ReadBy: c.ReadBy,
	}, nil
}

// UnreadCount returns the number of pending comments, leaving out the
// admin's own replies so they never inflate their own queue.
func (s *service) UnreadCount(ctx context.Context, actor domain.Actor) (int64, error) {
	if err := requireAdmin(actor); err != nil {
		return 0, err
	}

	count, err := s.commentRepo.CountUnread(ctx, actor.UserID)
	if err != nil {
		logrus.Errorf("failed to count unread comments: %v", err)
		return 0, domain.ErrInternalServerError
	}
	return count, nil
}

// ListUnread returns unread comments newest-first, each enriched with its
// article reference and, for registered authors, a user snapshot. Every call
// re-reads current state; there is no cursor to resume from.
func (s *service) ListUnread(ctx context.Context, actor domain.Actor, limit int64) ([]*domain.Comment, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultUnreadLimit
	}
	if limit > MaxUnreadLimit {
		limit = MaxUnreadLimit
	}

	comments, err := s.commentRepo.FetchUnread(ctx, limit)
	if err != nil {
		logrus.Errorf("failed to fetch unread comments: %v", err)
		return nil, domain.ErrInternalServerError
	}
	if len(comments) == 0 {
		return []*domain.Comment{}, nil
	}

	if err := s.fillSnapshots(ctx, comments); err != nil {
		logrus.Errorf("failed to enrich unread comments: %v", err)
		return nil, domain.ErrInternalServerError
	}

	return comments, nil
}

// fillSnapshots batch-loads the referenced articles and users and attaches
// them to the comments.
func (s *service) fillSnapshots(ctx context.Context, comments []*domain.Comment) error {
	articleSet := make(map[int64]struct{})
	userSet := make(map[int64]struct{})
	for _, c := range comments {
		articleSet[c.ArticleID] = struct{}{}
		if c.UserID != nil {
			userSet[*c.UserID] = struct{}{}
		}
	}

	articleIDs := make([]int64, 0, len(articleSet))
	for id := range articleSet {
		articleIDs = append(articleIDs, id)
	}
	articles, err := s.articleRepo.GetByIDs(ctx, articleIDs)
	if err != nil {
		return err
	}
	articleByID := make(map[int64]domain.Article, len(articles))
	for _, a := range articles {
		articleByID[a.ID] = a
	}

	userIDs := make([]int64, 0, len(userSet))
	for id := range userSet {
		userIDs = append(userIDs, id)
	}
	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return err
	}
	userByID := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	for _, c := range comments {
		if a, ok := articleByID[c.ArticleID]; ok {
			c.Article = &domain.Article{ID: a.ID, Title: a.Title, Slug: a.Slug}
		}
		if c.UserID != nil {
			if u, ok := userByID[*c.UserID]; ok {
				c.User = &domain.User{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
			}
		}
	}
	return nil
}
