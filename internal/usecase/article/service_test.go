package article_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-blog/inkwell/domain"
	"github.com/inkwell-blog/inkwell/domain/mocks"
	ucase "github.com/inkwell-blog/inkwell/internal/usecase/article"
)

func TestFetch(t *testing.T) {
	articleRepo := new(mocks.ArticleRepository)
	bloomRepo := new(mocks.BloomRepository)
	list := []domain.Article{
		{ID: 1, Title: faker.Sentence(), CreatedAt: time.Now()},
		{ID: 2, Title: faker.Sentence(), CreatedAt: time.Now().Add(-time.Minute)},
	}
	articleRepo.On("Fetch", mock.Anything, "", int64(10)).Return(list, nil)

	svc := ucase.NewService(articleRepo, bloomRepo)
	res, nextCursor, err := svc.Fetch(context.Background(), "", 10)

	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.NotEmpty(t, nextCursor)
}

func TestStore(t *testing.T) {
	articleRepo := new(mocks.ArticleRepository)
	bloomRepo := new(mocks.BloomRepository)
	articleRepo.On("Store", mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
		return a.Slug == "hello-world" && !a.CreatedAt.IsZero()
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Article).ID = 42
	}).Return(nil)
	bloomRepo.On("Add", mock.Anything, int64(42)).Return(nil)

	svc := ucase.NewService(articleRepo, bloomRepo)
	ar := &domain.Article{Title: "Hello, World!", Content: faker.Paragraph()}
	err := svc.Store(context.Background(), ar)

	require.NoError(t, err)
	bloomRepo.AssertExpectations(t)
}

func TestStore_BlankTitle(t *testing.T) {
	articleRepo := new(mocks.ArticleRepository)
	bloomRepo := new(mocks.BloomRepository)

	svc := ucase.NewService(articleRepo, bloomRepo)
	err := svc.Store(context.Background(), &domain.Article{Title: "  ", Content: "body"})

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	articleRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestDelete_AuthorOrAdmin(t *testing.T) {
	tests := []struct {
		name     string
		actor    domain.Actor
		expected error
	}{
		{"anonymous", domain.Actor{}, domain.ErrUnauthorized},
		{"another user", domain.Actor{UserID: 9}, domain.ErrForbidden},
		{"the author", domain.Actor{UserID: 7}, nil},
		{"an admin", domain.Actor{UserID: 1, Admin: true}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articleRepo := new(mocks.ArticleRepository)
			bloomRepo := new(mocks.BloomRepository)
			articleRepo.On("GetByID", mock.Anything, int64(42)).
				Return(domain.Article{ID: 42, User: domain.User{ID: 7}}, nil)
			articleRepo.On("Delete", mock.Anything, int64(42)).Return(nil)

			svc := ucase.NewService(articleRepo, bloomRepo)
			err := svc.Delete(context.Background(), 42, tt.actor)

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				articleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitBloomFilter(t *testing.T) {
	articleRepo := new(mocks.ArticleRepository)
	bloomRepo := new(mocks.BloomRepository)
	articleRepo.On("FetchIDs", mock.Anything, int64(0), int64(1000)).
		Return([]int64{1, 2, 3}, nil)
	bloomRepo.On("BulkAdd", mock.Anything, []int64{1, 2, 3}).Return(nil)

	svc := ucase.NewService(articleRepo, bloomRepo)
	err := svc.InitBloomFilter(context.Background())

	require.NoError(t, err)
	bloomRepo.AssertExpectations(t)
}
