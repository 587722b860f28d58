// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"
	"testing"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRequestRepository is a testify mock for repository.RequestRepository.
type MockRequestRepository struct {
	mock.Mock
}

// NewMockRequestRepository creates the mock and registers cleanup assertions.
func NewMockRequestRepository(t *testing.T) *MockRequestRepository {
	m := &MockRequestRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ repository.RequestRepository = (*MockRequestRepository)(nil)

func (m *MockRequestRepository) Create(ctx context.Context, request *entity.BloodRequest) (string, error) {
	args := m.Called(ctx, request)

	return args.String(0), args.Error(1)
}

func (m *MockRequestRepository) FindByID(ctx context.Context, id string) (*entity.BloodRequest, error) {
	args := m.Called(ctx, id)

	var r0 *entity.BloodRequest
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.BloodRequest)
	}

	return r0, args.Error(1)
}

func (m *MockRequestRepository) ListAll(ctx context.Context) ([]*entity.BloodRequest, error) {
	args := m.Called(ctx)

	var r0 []*entity.BloodRequest
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.BloodRequest)
	}

	return r0, args.Error(1)
}

func (m *MockRequestRepository) ListByHospital(ctx context.Context, hospitalID string) ([]*entity.BloodRequest, error) {
	args := m.Called(ctx, hospitalID)

	var r0 []*entity.BloodRequest
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.BloodRequest)
	}

	return r0, args.Error(1)
}

func (m *MockRequestRepository) Update(ctx context.Context, request *entity.BloodRequest) error {
	args := m.Called(ctx, request)

	return args.Error(0)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *MockRequestRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockRequestRepository) SubmitResponse(ctx context.Context, requestID string, response *entity.DonorResponse, autoFulfill bool) (*repository.SubmitOutcome, error) {
	args := m.Called(ctx, requestID, response, autoFulfill)

	var r0 *repository.SubmitOutcome
	if v := args.Get(0); v != nil {
		r0 = v.(*repository.SubmitOutcome)
	}

	return r0, args.Error(1)
}

// EXPECT returns the expectation builder for the mock.
func (m *MockRequestRepository) EXPECT() *MockRequestRepositoryExpecter {
	return &MockRequestRepositoryExpecter{mock: &m.Mock}
}

// MockRequestRepositoryExpecter builds call expectations.
type MockRequestRepositoryExpecter struct {
	mock *mock.Mock
}

func (e *MockRequestRepositoryExpecter) Create(ctx, request any) *mock.Call {
	return e.mock.On("Create", ctx, request)
}

func (e *MockRequestRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockRequestRepositoryExpecter) ListAll(ctx any) *mock.Call {
	return e.mock.On("ListAll", ctx)
}

func (e *MockRequestRepositoryExpecter) ListByHospital(ctx, hospitalID any) *mock.Call {
	return e.mock.On("ListByHospital", ctx, hospitalID)
}

func (e *MockRequestRepositoryExpecter) Update(ctx, request any) *mock.Call {
	return e.mock.On("Update", ctx, request)
}

func (e *MockRequestRepositoryExpecter) UpdateStatus(ctx, id, status any) *mock.Call {
	return e.mock.On("UpdateStatus", ctx, id, status)
}

func (e *MockRequestRepositoryExpecter) Delete(ctx, id any) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

func (e *MockRequestRepositoryExpecter) SubmitResponse(ctx, requestID, response, autoFulfill any) *mock.Call {
	return e.mock.On("SubmitResponse", ctx, requestID, response, autoFulfill)
}
