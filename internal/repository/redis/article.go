package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/inkwell-blog/inkwell/domain"
)

const (
	KeyArticles = "article:%d"

	articleTTL = 10 * time.Minute
)

type articleCache struct {
	client *redis.Client
}

var _ domain.ArticleCache = (*articleCache)(nil)

func NewArticleCache(client *redis.Client) *articleCache {
	return &articleCache{
		client,
	}
}

func (c *articleCache) GetArticle(ctx context.Context, id int64) (res domain.Article, err error) {
	key := fmt.Sprintf(KeyArticles, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Article{}, redis.Nil
	} else if err != nil {
		return domain.Article{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Article{}, err
	}
	return
}

func (c *articleCache) GetArticleByIDs(ctx context.Context, ids []int64) (res []domain.Article, err error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = fmt.Sprintf(KeyArticles, id)
	}

	jsonList, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, len(ids))
	for i, val := range jsonList {
		if val == nil {
			continue
		}

		var ar domain.Article
		if str, ok := val.(string); ok {
			_ = json.Unmarshal([]byte(str), &ar)
			articles[i] = ar
		}
	}

	return articles, nil
}

func (c *articleCache) SetArticle(ctx context.Context, ar *domain.Article) (err error) {
	key := fmt.Sprintf(KeyArticles, ar.ID)
	data, err := json.Marshal(ar)
	if err != nil {
		return
	}
	err = c.client.Set(ctx, key, data, articleTTL).Err()
	return
}

func (c *articleCache) BatchSetArticle(ctx context.Context, ars []domain.Article) error {
	if len(ars) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for i := range ars {
		data, err := json.Marshal(ars[i])
		if err != nil {
			logrus.Warnf("failed to marshal article for cache, ID: %d, err: %v", ars[i].ID, err)
			continue
		}
		key := fmt.Sprintf(KeyArticles, ars[i].ID)
		pipe.Set(ctx, key, data, articleTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *articleCache) DeleteArticle(ctx context.Context, id int64) (err error) {
	key := fmt.Sprintf(KeyArticles, id)
	return c.client.Del(ctx, key).Err()
}
