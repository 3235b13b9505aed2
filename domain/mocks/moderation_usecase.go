package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/inkwell-blog/inkwell/domain"
)

// ModerationUsecase is a mock type for the domain.ModerationUsecase interface
type ModerationUsecase struct {
	mock.Mock
}

func (m *ModerationUsecase) MarkRead(ctx context.Context, id string, actor domain.Actor) (*domain.ReadReceipt, error) {
	ret := m.Called(ctx, id, actor)

	var r0 *domain.ReadReceipt
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.ReadReceipt)
	}
	return r0, ret.Error(1)
}

func (m *ModerationUsecase) UnreadCount(ctx context.Context, actor domain.Actor) (int64, error) {
	ret := m.Called(ctx, actor)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *ModerationUsecase) ListUnread(ctx context.Context, actor domain.Actor, limit int64) ([]*domain.Comment, error) {
	ret := m.Called(ctx, actor, limit)

	var r0 []*domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Comment)
	}
	return r0, ret.Error(1)
}

var _ domain.ModerationUsecase = (*ModerationUsecase)(nil)
