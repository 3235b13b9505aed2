package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/inkwell-blog/inkwell/domain"
)

// CommentRepository is a mock type for the domain.CommentRepository interface
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	ret := m.Called(ctx, c)
	return ret.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	ret := m.Called(ctx, id)

	var r0 *domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Comment)
	}
	return r0, ret.Error(1)
}

func (m *CommentRepository) FetchByArticle(ctx context.Context, articleID int64) ([]*domain.Comment, error) {
	ret := m.Called(ctx, articleID)

	var r0 []*domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Comment)
	}
	return r0, ret.Error(1)
}

func (m *CommentRepository) FetchRoots(ctx context.Context, articleID int64, cursor string, limit int64) ([]*domain.Comment, error) {
	ret := m.Called(ctx, articleID, cursor, limit)

	var r0 []*domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Comment)
	}
	return r0, ret.Error(1)
}

func (m *CommentRepository) FetchReplies(ctx context.Context, rootIDs []string) ([]*domain.Comment, error) {
	ret := m.Called(ctx, rootIDs)

	var r0 []*domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Comment)
	}
	return r0, ret.Error(1)
}

func (m *CommentRepository) DeleteSubtree(ctx context.Context, id string) (int64, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *CommentRepository) MarkRead(ctx context.Context, id string, adminID int64, at time.Time) (*domain.Comment, error) {
	ret := m.Called(ctx, id, adminID, at)

	var r0 *domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Comment)
	}
	return r0, ret.Error(1)
}

func (m *CommentRepository) CountUnread(ctx context.Context, excludeUserID int64) (int64, error) {
	ret := m.Called(ctx, excludeUserID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *CommentRepository) FetchUnread(ctx context.Context, limit int64) ([]*domain.Comment, error) {
	ret := m.Called(ctx, limit)

	var r0 []*domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Comment)
	}
	return r0, ret.Error(1)
}

func (m *CommentRepository) ApplyCommentCounts(ctx context.Context, articleIDs []int64) error {
	ret := m.Called(ctx, articleIDs)
	return ret.Error(0)
}

var _ domain.CommentRepository = (*CommentRepository)(nil)
