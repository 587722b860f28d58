package repository

import (
	"context"
	"testing"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockResponseRepository is a testify mock for repository.ResponseRepository.
type MockResponseRepository struct {
	mock.Mock
}

// NewMockResponseRepository creates the mock and registers cleanup assertions.
func NewMockResponseRepository(t *testing.T) *MockResponseRepository {
	m := &MockResponseRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ repository.ResponseRepository = (*MockResponseRepository)(nil)

func (m *MockResponseRepository) FindByID(ctx context.Context, requestID, responseID string) (*entity.DonorResponse, error) {
	args := m.Called(ctx, requestID, responseID)

	var r0 *entity.DonorResponse
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.DonorResponse)
	}

	return r0, args.Error(1)
}

func (m *MockResponseRepository) ListByRequest(ctx context.Context, requestID string) ([]*entity.DonorResponse, error) {
	args := m.Called(ctx, requestID)

	var r0 []*entity.DonorResponse
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.DonorResponse)
	}

	return r0, args.Error(1)
}

func (m *MockResponseRepository) ListByDonor(ctx context.Context, donorID string) ([]*entity.DonorResponse, error) {
	args := m.Called(ctx, donorID)

	var r0 []*entity.DonorResponse
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.DonorResponse)
	}

	return r0, args.Error(1)
}

func (m *MockResponseRepository) Update(ctx context.Context, response *entity.DonorResponse) error {
	args := m.Called(ctx, response)

	return args.Error(0)
}

func (m *MockResponseRepository) MarkDonated(ctx context.Context, requestID, responseID string) error {
	args := m.Called(ctx, requestID, responseID)

	return args.Error(0)
}

func (m *MockResponseRepository) Delete(ctx context.Context, requestID, responseID string) error {
	args := m.Called(ctx, requestID, responseID)

	return args.Error(0)
}

// EXPECT returns the expectation builder for the mock.
func (m *MockResponseRepository) EXPECT() *MockResponseRepositoryExpecter {
	return &MockResponseRepositoryExpecter{mock: &m.Mock}
}

// MockResponseRepositoryExpecter builds call expectations.
type MockResponseRepositoryExpecter struct {
	mock *mock.Mock
}

func (e *MockResponseRepositoryExpecter) FindByID(ctx, requestID, responseID any) *mock.Call {
	return e.mock.On("FindByID", ctx, requestID, responseID)
}

func (e *MockResponseRepositoryExpecter) ListByRequest(ctx, requestID any) *mock.Call {
	return e.mock.On("ListByRequest", ctx, requestID)
}

func (e *MockResponseRepositoryExpecter) ListByDonor(ctx, donorID any) *mock.Call {
	return e.mock.On("ListByDonor", ctx, donorID)
}

func (e *MockResponseRepositoryExpecter) Update(ctx, response any) *mock.Call {
	return e.mock.On("Update", ctx, response)
}

func (e *MockResponseRepositoryExpecter) MarkDonated(ctx, requestID, responseID any) *mock.Call {
	return e.mock.On("MarkDonated", ctx, requestID, responseID)
}

func (e *MockResponseRepositoryExpecter) Delete(ctx, requestID, responseID any) *mock.Call {
	return e.mock.On("Delete", ctx, requestID, responseID)
}
