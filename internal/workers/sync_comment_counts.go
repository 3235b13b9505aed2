package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inkwell-blog/inkwell/domain"
)

type syncCommentCountsWorker struct {
	commentRepo domain.CommentRepository
	ch          chan domain.CommentCountDelta
}

var _ domain.CommentCountSyncer = (*syncCommentCountsWorker)(nil)

func NewSyncCommentCountsWorker(cr domain.CommentRepository) *syncCommentCountsWorker {
	return &syncCommentCountsWorker{
		commentRepo: cr,
		ch:          make(chan domain.CommentCountDelta, 1024),
	}
}

// Send enqueues a delta without blocking. A dropped delta is harmless: the
// flush recounts from the comment table instead of summing deltas.
func (s *syncCommentCountsWorker) Send(delta domain.CommentCountDelta) {
	select {
	case s.ch <- delta:
	default:
		logrus.Info("SyncCommentCountsWorker's channel is full, delta dropped")
	}
}

func (s *syncCommentCountsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make([]domain.CommentCountDelta, 0, batchSize)
	for {
		select {
		case delta := <-s.ch:
			batch = append(batch, delta)
			if len(batch) == batchSize {
				s.flush(ctx, batch)
				batch = make([]domain.CommentCountDelta, 0, batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]domain.CommentCountDelta, 0)
		case <-ctx.Done():
			logrus.Info("shutting down SyncCommentCountsWorker, flushing remaining deltas...")
			s.flush(context.WithoutCancel(ctx), batch)
			return
		}
	}
}

func (s *syncCommentCountsWorker) flush(ctx context.Context, batch []domain.CommentCountDelta) {
	if len(batch) == 0 {
		return
	}

	touched := make(map[int64]struct{})
	for i := range batch {
		touched[batch[i].ArticleID] = struct{}{}
	}

	articleIDs := make([]int64, 0, len(touched))
	for aid := range touched {
		articleIDs = append(articleIDs, aid)
	}

	if err := s.commentRepo.ApplyCommentCounts(ctx, articleIDs); err != nil {
		logrus.Errorf("failed to sync comment counts for %d articles: %v", len(articleIDs), err)
	}
}
