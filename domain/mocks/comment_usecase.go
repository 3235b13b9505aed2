package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/inkwell-blog/inkwell/domain"
)

// CommentUsecase is a mock type for the domain.CommentUsecase interface
type CommentUsecase struct {
	mock.Mock
}

func (m *CommentUsecase) Create(ctx context.Context, in domain.CreateCommentInput) (*domain.Comment, error) {
	ret := m.Called(ctx, in)

	var r0 *domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Comment)
	}
	return r0, ret.Error(1)
}

func (m *CommentUsecase) Delete(ctx context.Context, id string, actor domain.Actor) error {
	ret := m.Called(ctx, id, actor)
	return ret.Error(0)
}

func (m *CommentUsecase) FetchByArticle(ctx context.Context, articleID int64, cursor string, limit int64) ([]*domain.Comment, string, error) {
	ret := m.Called(ctx, articleID, cursor, limit)

	var r0 []*domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Comment)
	}
	return r0, ret.String(1), ret.Error(2)
}

var _ domain.CommentUsecase = (*CommentUsecase)(nil)
