package repository

import (
	"context"
	"testing"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a testify mock for repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

// NewMockProfileRepository creates the mock and registers cleanup assertions.
func NewMockProfileRepository(t *testing.T) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ repository.ProfileRepository = (*MockProfileRepository)(nil)

func (m *MockProfileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockProfileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	args := m.Called(ctx, uid)

	var r0 *entity.UserProfile
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.UserProfile)
	}

	return r0, args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockProfileRepository) ListAll(ctx context.Context) ([]*entity.UserProfile, error) {
	args := m.Called(ctx)

	var r0 []*entity.UserProfile
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.UserProfile)
	}

	return r0, args.Error(1)
}

// EXPECT returns the expectation builder for the mock.
func (m *MockProfileRepository) EXPECT() *MockProfileRepositoryExpecter {
	return &MockProfileRepositoryExpecter{mock: &m.Mock}
}

// MockProfileRepositoryExpecter builds call expectations.
type MockProfileRepositoryExpecter struct {
	mock *mock.Mock
}

func (e *MockProfileRepositoryExpecter) Create(ctx, profile any) *mock.Call {
	return e.mock.On("Create", ctx, profile)
}

func (e *MockProfileRepositoryExpecter) FindByUID(ctx, uid any) *mock.Call {
	return e.mock.On("FindByUID", ctx, uid)
}

func (e *MockProfileRepositoryExpecter) Update(ctx, profile any) *mock.Call {
	return e.mock.On("Update", ctx, profile)
}

func (e *MockProfileRepositoryExpecter) ListAll(ctx any) *mock.Call {
	return e.mock.On("ListAll", ctx)
}
