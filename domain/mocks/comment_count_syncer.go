package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/inkwell-blog/inkwell/domain"
)

// CommentCountSyncer is a mock type for the domain.CommentCountSyncer interface
type CommentCountSyncer struct {
	mock.Mock
}

func (m *CommentCountSyncer) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *CommentCountSyncer) Send(delta domain.CommentCountDelta) {
	m.Called(delta)
}

var _ domain.CommentCountSyncer = (*CommentCountSyncer)(nil)
