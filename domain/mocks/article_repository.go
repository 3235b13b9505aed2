package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/inkwell-blog/inkwell/domain"
)

// ArticleRepository is a mock type for the domain.ArticleRepository interface
type ArticleRepository struct {
	mock.Mock
}

func (m *ArticleRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Article, error) {
	ret := m.Called(ctx, cursor, num)

	var r0 []domain.Article
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Article)
	}
	return r0, ret.Error(1)
}

func (m *ArticleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.Article), ret.Error(1)
}

func (m *ArticleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	ret := m.Called(ctx, ids)

	var r0 []domain.Article
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Article)
	}
	return r0, ret.Error(1)
}

func (m *ArticleRepository) Store(ctx context.Context, a *domain.Article) error {
	ret := m.Called(ctx, a)
	return ret.Error(0)
}

func (m *ArticleRepository) Delete(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func (m *ArticleRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	ret := m.Called(ctx, cursor, limit)

	var r0 []int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]int64)
	}
	return r0, ret.Error(1)
}

var _ domain.ArticleRepository = (*ArticleRepository)(nil)
