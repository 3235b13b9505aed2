package comment

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inkwell-blog/inkwell/domain"
	"github.com/inkwell-blog/inkwell/internal/repository"
)

type service struct {
	commentRepo domain.CommentRepository
	articleRepo domain.ArticleRepository
	bloomRepo   domain.BloomRepository
	countSyncer domain.CommentCountSyncer
	validate    *validator.Validate
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, articleRepo domain.ArticleRepository, bloomRepo domain.BloomRepository, countSyncer domain.CommentCountSyncer) *service {
	return &service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		bloomRepo:   bloomRepo,
		countSyncer: countSyncer,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *service) mustExists(ctx context.Context, articleID int64) error {
	exists, err := s.bloomRepo.Exists(ctx, articleID)
	if err != nil {
		// Fail open: the store check still catches missing articles.
		logrus.Errorf("bloom filter lookup failed for article %d: %v", articleID, err)
		return nil
	}
	if !exists {
		logrus.Warnf("bloom filter says article %d does not exist", articleID)
		return domain.ErrArticleNotFound
	}

	return nil
}

// Create validates the submission and persists the comment unread. All
// validation and policy checks run before any write; a failed submission
// never mutates the store.
func (s *service) Create(ctx context.Context, in domain.CreateCommentInput) (*domain.Comment, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, domain.ErrBadParamInput
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, domain.ErrBadParamInput
	}
	if utf8.RuneCountInString(in.Content) > domain.MaxCommentLength {
		return nil, domain.ErrBadParamInput
	}
	if !in.Author.Valid() {
		return nil, domain.ErrBadParamInput
	}

	if err := s.mustExists(ctx, in.ArticleID); err != nil {
		return nil, err
	}
	// The bloom filter gives false positives, confirm against the store.
	if _, err := s.articleRepo.GetByID(ctx, in.ArticleID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		logrus.Errorf("failed to load article %d: %v", in.ArticleID, err)
		return nil, domain.ErrInternalServerError
	}

	now := time.Now()
	c := &domain.Comment{
		ID:        uuid.NewString(),
		ArticleID: in.ArticleID,
		Content:   in.Content,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if uid, ok := in.Author.UserID(); ok {
		c.UserID = &uid
	} else {
		name, _ := in.Author.Name()
		c.AuthorName = &name
	}

	if in.ParentID != nil {
		if err := s.attachParent(ctx, c, *in.ParentID); err != nil {
			return nil, err
		}
	}

	if err := s.commentRepo.Store(ctx, c); err != nil {
		// A parent deleted between validation and insert surfaces here
		// through the store's referential integrity, never silently.
		if errors.Is(err, domain.ErrParentNotFound) || errors.Is(err, domain.ErrArticleNotFound) {
			return nil, err
		}
		logrus.Errorf("failed to store comment for article %d: %v", in.ArticleID, err)
		return nil, domain.ErrInternalServerError
	}

	s.countSyncer.Send(domain.CommentCountDelta{ArticleID: c.ArticleID, Delta: 1})

	return c, nil
}

// attachParent resolves the parent, enforces same-article parentage and the
// depth ceiling, and wires the parent/root references into c.
func (s *service) attachParent(ctx context.Context, c *domain.Comment, parentID string) error {
	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return domain.ErrParentNotFound
		}
		logrus.Errorf("failed to load parent comment %s: %v", parentID, err)
		return domain.ErrInternalServerError
	}

	// Cross-article parenting is invalid.
	if parent.ArticleID != c.ArticleID {
		return domain.ErrBadParamInput
	}

	all, err := s.commentRepo.FetchByArticle(ctx, c.ArticleID)
	if err != nil {
		logrus.Errorf("failed to load comments of article %d: %v", c.ArticleID, err)
		return domain.ErrInternalServerError
	}

	parentDepth, err := commentDepth(parent, commentIndex(all))
	if err != nil {
		logrus.Errorf("depth walk failed for parent %s: %v", parentID, err)
		return domain.ErrInternalServerError
	}
	if parentDepth+1 >= domain.MaxCommentDepth {
		return domain.ErrMaxDepthExceeded
	}

	c.ParentID = &parent.ID
	if parent.RootID != nil {
		c.RootID = parent.RootID
	} else {
		c.RootID = &parent.ID
	}
	return nil
}

// Delete removes the comment and its whole reply subtree. Administrator only;
// authorization is checked before any store access.
func (s *service) Delete(ctx context.Context, id string, actor domain.Actor) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthorized
	}
	if !actor.Admin {
		return domain.ErrForbidden
	}

	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return err
		}
		logrus.Errorf("failed to load comment %s: %v", id, err)
		return domain.ErrInternalServerError
	}

	removed, err := s.commentRepo.DeleteSubtree(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return err
		}
		logrus.Errorf("failed to delete comment subtree %s: %v", id, err)
		return domain.ErrInternalServerError
	}

	s.countSyncer.Send(domain.CommentCountDelta{ArticleID: c.ArticleID, Delta: -removed})

	return nil
}

// FetchByArticle returns one page of top-level comments, each with its reply
// subtree nested below it, newest roots first.
func (s *service) FetchByArticle(ctx context.Context, articleID int64, cursor string, limit int64) ([]*domain.Comment, string, error) {
	if err := s.mustExists(ctx, articleID); err != nil {
		return nil, "", err
	}

	roots, err := s.commentRepo.FetchRoots(ctx, articleID, cursor, limit)
	if err != nil {
		return nil, "", err
	}
	if len(roots) == 0 {
		return []*domain.Comment{}, "", nil
	}

	rootIDs := make([]string, len(roots))
	for i, root := range roots {
		rootIDs[i] = root.ID
	}

	replies, err := s.commentRepo.FetchReplies(ctx, rootIDs)
	if err != nil {
		logrus.Errorf("failed to load replies for article %d: %v", articleID, err)
		return nil, "", domain.ErrInternalServerError
	}

	nestReplies(roots, replies)

	return roots, repository.EncodeCursor(roots[len(roots)-1].CreatedAt), nil
}

// nestReplies attaches each reply under its direct parent. Replies arrive
// ordered by created_at ascending, so a parent is always placed before its
// children.
func nestReplies(roots []*domain.Comment, replies []*domain.Comment) {
	byID := commentIndex(roots)
	for _, r := range replies {
		byID[r.ID] = r
	}

	for _, root := range roots {
		root.Replies = []*domain.Comment{}
	}
	for _, r := range replies {
		if r.ParentID == nil {
			continue
		}
		parent, ok := byID[*r.ParentID]
		if !ok {
			logrus.Warnf("reply %s has no loaded parent %s", r.ID, *r.ParentID)
			continue
		}
		parent.Replies = append(parent.Replies, r)
	}
}
