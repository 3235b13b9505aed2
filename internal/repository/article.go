package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/inkwell-blog/inkwell/domain"
)

// articleRepository 协调层，协调缓存和数据库
type articleRepository struct {
	db           domain.ArticleDBRepository
	cache        domain.ArticleCache
	userRepo     domain.UserRepository
	rebuildGroup singleflight.Group
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository 创建协调层repository
func NewArticleRepository(db domain.ArticleDBRepository, cache domain.ArticleCache, userRepo domain.UserRepository) *articleRepository {
	return &articleRepository{
		db:       db,
		cache:    cache,
		userRepo: userRepo,
	}
}

// Fetch 获取文章列表, 列表页不走缓存
func (r *articleRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Article, error) {
	articles, err := r.db.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, err
	}

	return r.fillUserDetails(ctx, articles)
}

// GetByID 根据ID获取文章, 使用singleflight避免缓存击穿
func (r *articleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	article, err := r.cache.GetArticle(ctx, id)
	if err == nil {
		return article, nil
	}
	if !errors.Is(err, redis.Nil) {
		logrus.Warnf("cache get error for article %d: %v", id, err)
	}

	key := "article:" + strconv.FormatInt(id, 10)
	result, err, _ := r.rebuildGroup.Do(key, func() (interface{}, error) {
		art, err := r.db.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		user, err := r.userRepo.GetByID(ctx, art.User.ID)
		if err != nil {
			return nil, err
		}
		art.User = user

		_ = r.cache.SetArticle(context.WithoutCancel(ctx), &art)

		return art, nil
	})
	if err != nil {
		return domain.Article{}, err
	}

	return result.(domain.Article), nil
}

// GetByIDs 批量获取文章, 部分命中时回源并异步回填缓存
func (r *articleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cached, err := r.cache.GetArticleByIDs(ctx, ids)
	if err == nil {
		hit := true
		for i := range cached {
			if cached[i].ID == 0 {
				hit = false
				break
			}
		}
		if hit {
			return cached, nil
		}
	}

	articles, err := r.db.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	articles, err = r.fillUserDetails(ctx, articles)
	if err != nil {
		return nil, err
	}

	go func(arts []domain.Article) {
		_ = r.cache.BatchSetArticle(context.Background(), arts)
	}(articles)

	return articles, nil
}

func (r *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	return r.db.Store(ctx, a)
}

func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.Delete(ctx, id); err != nil {
		return err
	}

	if err := r.cache.DeleteArticle(ctx, id); err != nil {
		logrus.Warnf("failed to drop cached article %d: %v", id, err)
	}
	return nil
}

func (r *articleRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

// fillUserDetails 并发填充作者信息
func (r *articleRepository) fillUserDetails(ctx context.Context, data []domain.Article) ([]domain.Article, error) {
	if len(data) == 0 {
		return data, nil
	}

	mapUsers := map[int64]domain.User{}
	for _, article := range data { //nolint
		mapUsers[article.User.ID] = domain.User{}
	}

	g, ctx := errgroup.WithContext(ctx)
	chanUser := make(chan domain.User)
	for userID := range mapUsers {
		g.Go(func() error {
			res, err := r.userRepo.GetByID(ctx, userID)
			if err != nil {
				return err
			}
			chanUser <- res
			return nil
		})
	}

	go func() {
		defer close(chanUser)
		err := g.Wait()
		if err != nil {
			logrus.Error(err)
			return
		}
	}()

	for user := range chanUser {
		if user != (domain.User{}) {
			mapUsers[user.ID] = user
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for index, item := range data { //nolint
		if u, ok := mapUsers[item.User.ID]; ok {
			data[index].User = u
		}
	}
	return data, nil
}
