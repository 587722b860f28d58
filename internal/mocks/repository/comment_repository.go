package repository

import (
	"context"
	"testing"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockCommentRepository is a testify mock for repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

// NewMockCommentRepository creates the mock and registers cleanup assertions.
func NewMockCommentRepository(t *testing.T) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.DonorComment) (string, error) {
	args := m.Called(ctx, comment)

	return args.String(0), args.Error(1)
}

func (m *MockCommentRepository) ListRecent(ctx context.Context, limit int) ([]*entity.DonorComment, error) {
	args := m.Called(ctx, limit)

	var r0 []*entity.DonorComment
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.DonorComment)
	}

	return r0, args.Error(1)
}

// EXPECT returns the expectation builder for the mock.
func (m *MockCommentRepository) EXPECT() *MockCommentRepositoryExpecter {
	return &MockCommentRepositoryExpecter{mock: &m.Mock}
}

// MockCommentRepositoryExpecter builds call expectations.
type MockCommentRepositoryExpecter struct {
	mock *mock.Mock
}

func (e *MockCommentRepositoryExpecter) Create(ctx, comment any) *mock.Call {
	return e.mock.On("Create", ctx, comment)
}

func (e *MockCommentRepositoryExpecter) ListRecent(ctx, limit any) *mock.Call {
	return e.mock.On("ListRecent", ctx, limit)
}
