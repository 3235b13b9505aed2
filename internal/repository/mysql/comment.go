package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/inkwell-blog/inkwell/domain"
	"github.com/inkwell-blog/inkwell/internal/repository"
	"github.com/inkwell-blog/inkwell/internal/repository/mysql/model"
)

// mysqlErrFKViolation is returned by the driver when an insert references a
// missing parent row (a reply racing against a cascade delete, or a comment
// against a deleted article).
const mysqlErrFKViolation = 1452

// subtreeWalkLimit bounds the BFS over the parent-id index. Valid trees are
// at most MaxCommentDepth levels deep; anything beyond this is corrupt data.
const subtreeWalkLimit = 32

type commentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	err := c.DB.WithContext(ctx).Create(model.NewCommentFromDomain(comment)).Error
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrFKViolation {
			if comment.ParentID != nil {
				return domain.ErrParentNotFound
			}
			return domain.ErrArticleNotFound
		}
		return err
	}
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	domainComment := comment.ToDomain()
	return &domainComment, nil
}

func (c *commentRepository) FetchByArticle(ctx context.Context, articleID int64) ([]*domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("article_id = ?", articleID).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Comment, 0, len(comments))
	for _, comment := range comments {
		domainComment := comment.ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}

func (c *commentRepository) FetchRoots(ctx context.Context, articleID int64, cursor string, limit int64) ([]*domain.Comment, error) {
	query := c.DB.WithContext(ctx).
		Where("article_id = ? AND parent_id IS NULL", articleID)

	if cursor != "" {
		decodedCursor, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		query = query.Where("created_at < ?", decodedCursor)
	}

	var comments []model.Comment
	err := query.
		Order("created_at DESC").
		Limit(int(limit)).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	var res []*domain.Comment
	for _, comment := range comments {
		domainComment := comment.ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}

func (c *commentRepository) FetchReplies(ctx context.Context, rootIDs []string) ([]*domain.Comment, error) {
	if len(rootIDs) == 0 {
		return nil, nil
	}

	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("root_id IN ?", rootIDs).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	var res []*domain.Comment
	for _, comment := range comments {
		domainComment := comment.ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}

// DeleteSubtree collects the descendant set level by level over the parent_id
// index, then removes the whole id set inside one transaction, so concurrent
// readers never observe a half-deleted thread.
func (c *commentRepository) DeleteSubtree(ctx context.Context, id string) (int64, error) {
	var removed int64
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := []string{id}
		frontier := []string{id}

		for i := 0; len(frontier) > 0; i++ {
			if i >= subtreeWalkLimit {
				return domain.ErrInternalServerError
			}

			var children []string
			if err := tx.Model(&model.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return err
			}
			ids = append(ids, children...)
			frontier = children
		}

		result := tx.Where("id IN ?", ids).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrCommentNotFound
		}
		removed = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// MarkRead updates the row only while it is still unread, so the first admin
// to mark it wins and later calls read back the original receipt.
func (c *commentRepository) MarkRead(ctx context.Context, id string, adminID int64, at time.Time) (*domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Comment{}).
			Where("id = ? AND is_read = ?", id, false).
			Updates(map[string]any{
				"is_read": true,
				"read_at": at,
				"read_by": adminID,
			}).Error
		if err != nil {
			return err
		}

		return tx.First(&comment, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}

	domainComment := comment.ToDomain()
	return &domainComment, nil
}

func (c *commentRepository) CountUnread(ctx context.Context, excludeUserID int64) (int64, error) {
	var count int64
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("is_read = ? AND (user_id IS NULL OR user_id <> ?)", false, excludeUserID).
		Count(&count).Error
	return count, err
}

func (c *commentRepository) FetchUnread(ctx context.Context, limit int64) ([]*domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("is_read = ?", false).
		Order("created_at DESC").
		Limit(int(limit)).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	var res []*domain.Comment
	for _, comment := range comments {
		domainComment := comment.ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}

func (c *commentRepository) ApplyCommentCounts(ctx context.Context, articleIDs []int64) error {
	if len(articleIDs) == 0 {
		return nil
	}

	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, aid := range articleIDs {
			var realCount int64
			if err := tx.Model(&model.Comment{}).
				Where("article_id = ?", aid).
				Count(&realCount).Error; err != nil {
				return err
			}

			if err := tx.Model(&model.Article{}).
				Where("id = ?", aid).
				UpdateColumn("comments", realCount).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

var _ domain.CommentRepository = (*commentRepository)(nil)
