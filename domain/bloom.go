package domain

import "context"

// BloomRepository tracks the set of known article IDs so comment submissions
// against a missing article can be rejected without touching the database.
type BloomRepository interface {
	// Add registers an article ID in the filter.
	Add(ctx context.Context, id int64) error

	// Exists checks whether the ID may exist.
	// true: possibly exists, check cache/DB next.
	// false: definitely absent, reject with ErrArticleNotFound.
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd registers many IDs at once, used when seeding at startup.
	BulkAdd(ctx context.Context, ids []int64) error
}
