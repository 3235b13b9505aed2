package article

import (
	"context"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"

	"github.com/inkwell-blog/inkwell/domain"
	"github.com/inkwell-blog/inkwell/internal/repository"
)

const bloomSeedBatch = 1000

type Service struct {
	articleRepo domain.ArticleRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(a domain.ArticleRepository, b domain.BloomRepository) *Service {
	return &Service{
		articleRepo: a,
		bloomRepo:   b,
	}
}

func (a *Service) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Article, string, error) {
	res, err := a.articleRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []domain.Article{}, "", nil
	}

	nextCursor := repository.EncodeCursor(res[len(res)-1].CreatedAt)
	return res, nextCursor, nil
}

func (a *Service) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	return a.articleRepo.GetByID(ctx, id)
}

func (a *Service) Store(ctx context.Context, ar *domain.Article) error {
	if strings.TrimSpace(ar.Title) == "" || strings.TrimSpace(ar.Content) == "" {
		return domain.ErrBadParamInput
	}

	ar.Slug = slug.Make(ar.Title)
	now := time.Now()
	ar.CreatedAt = now
	ar.UpdatedAt = now

	if err := a.articleRepo.Store(ctx, ar); err != nil {
		return err
	}

	if err := a.bloomRepo.Add(ctx, ar.ID); err != nil {
		logrus.Warnf("failed to add article %d to bloom filter: %v", ar.ID, err)
	}
	return nil
}

// Delete removes the article and its whole comment set. Allowed for the
// article's author and for admins.
func (a *Service) Delete(ctx context.Context, id int64, actor domain.Actor) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthorized
	}

	ar, err := a.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ar.User.ID != actor.UserID && !actor.Admin {
		return domain.ErrForbidden
	}

	return a.articleRepo.Delete(ctx, id)
}

// InitBloomFilter seeds the filter with every known article ID at startup.
func (a *Service) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := a.articleRepo.FetchIDs(ctx, cursor, bloomSeedBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := a.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]

		if len(ids) < bloomSeedBatch {
			return nil
		}
	}
}
