package domain

import (
	"context"
	"time"
)

// Article is representing the Article data struct
type Article struct {
	ID        int64     // Unique identifier for the article
	Title     string    // Article title
	Slug      string    // URL slug, generated from the title
	Content   string    // Article body content
	User      User      // Author information
	Comments  int64     // Denormalized comment count, refreshed by the sync worker
	UpdatedAt time.Time // Last update timestamp
	CreatedAt time.Time // Creation timestamp
}

// ArticleDBRepository defines the database layer for article persistence.
type ArticleDBRepository interface {
	// Fetch retrieves a paginated list of articles.
	// cursor: for pagination, pass the encoded cursor or empty string for the first page.
	Fetch(ctx context.Context, cursor string, num int64) (res []Article, err error)

	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id int64) (Article, error)

	// GetByIDs retrieves articles by given IDs. Missing IDs are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]Article, error)

	// Store creates a new article in the repository.
	Store(ctx context.Context, a *Article) error

	// Delete removes an article together with its whole comment set.
	// Returns ErrNotFound if not exists.
	Delete(ctx context.Context, id int64) error

	// FetchIDs pages over all article IDs, used to seed the bloom filter.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// ArticleRepository is the coordinating contract consumed by the usecases:
// same surface as the DB layer, backed by the cache where it pays off.
type ArticleRepository interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Article, error)
	GetByID(ctx context.Context, id int64) (Article, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Article, error)
	Store(ctx context.Context, a *Article) error
	Delete(ctx context.Context, id int64) error
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

type ArticleCache interface {
	GetArticle(ctx context.Context, id int64) (res Article, err error)
	GetArticleByIDs(ctx context.Context, ids []int64) (res []Article, err error)
	SetArticle(ctx context.Context, ar *Article) (err error)
	BatchSetArticle(ctx context.Context, ars []Article) error

	// DeleteArticle drops the cached article after a delete or update.
	DeleteArticle(ctx context.Context, id int64) (err error)
}

type ArticleUsecase interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Article, string, error)
	GetByID(ctx context.Context, id int64) (Article, error)
	Store(ctx context.Context, ar *Article) error
	// Delete removes the article and, through the store's ownership contract,
	// its entire comment subtree. Author or admin only.
	Delete(ctx context.Context, id int64, actor Actor) error
	InitBloomFilter(ctx context.Context) error
}
