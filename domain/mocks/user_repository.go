package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/inkwell-blog/inkwell/domain"
)

// UserRepository is a mock type for the domain.UserRepository interface
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	ret := m.Called(ctx, u)
	return ret.Error(0)
}

func (m *UserRepository) Update(ctx context.Context, u *domain.User) error {
	ret := m.Called(ctx, u)
	return ret.Error(0)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	ret := m.Called(ctx, username)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (m *UserRepository) GetByIDs(ctx context.Context, userIDs []int64) ([]domain.User, error) {
	ret := m.Called(ctx, userIDs)

	var r0 []domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.User)
	}
	return r0, ret.Error(1)
}

var _ domain.UserRepository = (*UserRepository)(nil)
