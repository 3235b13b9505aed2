package domain

import "context"

// CommentCountDelta is a pending change to an article's comment counter.
// Delta is +1 for a created comment and -N for a cascade delete of N rows.
type CommentCountDelta struct {
	ArticleID int64
	Delta     int64
}

// CommentCountSyncer folds comment-count deltas in the background and flushes
// them onto the article table in batches.
type CommentCountSyncer interface {
	Start(ctx context.Context)

	// Send enqueues a delta. The call never blocks; deltas may be dropped
	// under backpressure since the flush recounts from the comment table.
	Send(delta CommentCountDelta)
}
