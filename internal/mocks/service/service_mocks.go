// Package service provides testify mocks for the external collaborator
// interfaces.
package service

import (
	"context"
	"testing"

	"lifelink/internal/domain/fulfillment"
	"lifelink/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockIdentityService is a testify mock for service.IdentityService.
type MockIdentityService struct {
	mock.Mock
}

// NewMockIdentityService creates the mock and registers cleanup assertions.
func NewMockIdentityService(t *testing.T) *MockIdentityService {
	m := &MockIdentityService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.IdentityService = (*MockIdentityService)(nil)

func (m *MockIdentityService) VerifyToken(ctx context.Context, idToken string) (*service.Identity, error) {
	args := m.Called(ctx, idToken)

	var r0 *service.Identity
	if v := args.Get(0); v != nil {
		r0 = v.(*service.Identity)
	}

	return r0, args.Error(1)
}

// EXPECT returns the expectation builder for the mock.
func (m *MockIdentityService) EXPECT() *MockIdentityServiceExpecter {
	return &MockIdentityServiceExpecter{mock: &m.Mock}
}

// MockIdentityServiceExpecter builds call expectations.
type MockIdentityServiceExpecter struct {
	mock *mock.Mock
}

func (e *MockIdentityServiceExpecter) VerifyToken(ctx, idToken any) *mock.Call {
	return e.mock.On("VerifyToken", ctx, idToken)
}

// MockQRCodeService is a testify mock for service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates the mock and registers cleanup assertions.
func NewMockQRCodeService(t *testing.T) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.QRCodeService = (*MockQRCodeService)(nil)

func (m *MockQRCodeService) GenerateRequestQR(requestID string) ([]byte, error) {
	args := m.Called(requestID)

	var r0 []byte
	if v := args.Get(0); v != nil {
		r0 = v.([]byte)
	}

	return r0, args.Error(1)
}

func (m *MockQRCodeService) ParseRequestQR(qrData string) (string, error) {
	args := m.Called(qrData)

	return args.String(0), args.Error(1)
}

// EXPECT returns the expectation builder for the mock.
func (m *MockQRCodeService) EXPECT() *MockQRCodeServiceExpecter {
	return &MockQRCodeServiceExpecter{mock: &m.Mock}
}

// MockQRCodeServiceExpecter builds call expectations.
type MockQRCodeServiceExpecter struct {
	mock *mock.Mock
}

func (e *MockQRCodeServiceExpecter) GenerateRequestQR(requestID any) *mock.Call {
	return e.mock.On("GenerateRequestQR", requestID)
}

func (e *MockQRCodeServiceExpecter) ParseRequestQR(qrData any) *mock.Call {
	return e.mock.On("ParseRequestQR", qrData)
}

// MockEventPublisher is a testify mock for service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates the mock and registers cleanup assertions.
func NewMockEventPublisher(t *testing.T) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) PublishRequestEvent(ctx context.Context, event *service.RequestEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

// EXPECT returns the expectation builder for the mock.
func (m *MockEventPublisher) EXPECT() *MockEventPublisherExpecter {
	return &MockEventPublisherExpecter{mock: &m.Mock}
}

// MockEventPublisherExpecter builds call expectations.
type MockEventPublisherExpecter struct {
	mock *mock.Mock
}

func (e *MockEventPublisherExpecter) PublishRequestEvent(ctx, event any) *mock.Call {
	return e.mock.On("PublishRequestEvent", ctx, event)
}

func (e *MockEventPublisherExpecter) Close() *mock.Call {
	return e.mock.On("Close")
}

// MockNotificationService is a testify mock for service.NotificationService.
type MockNotificationService struct {
	mock.Mock
}

// NewMockNotificationService creates the mock and registers cleanup assertions.
func NewMockNotificationService(t *testing.T) *MockNotificationService {
	m := &MockNotificationService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.NotificationService = (*MockNotificationService)(nil)

func (m *MockNotificationService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	args := m.Called(ctx, topic, title, body, data)

	return args.Error(0)
}

// EXPECT returns the expectation builder for the mock.
func (m *MockNotificationService) EXPECT() *MockNotificationServiceExpecter {
	return &MockNotificationServiceExpecter{mock: &m.Mock}
}

// MockNotificationServiceExpecter builds call expectations.
type MockNotificationServiceExpecter struct {
	mock *mock.Mock
}

func (e *MockNotificationServiceExpecter) SendTopicNotification(ctx, topic, title, body, data any) *mock.Call {
	return e.mock.On("SendTopicNotification", ctx, topic, title, body, data)
}

// MockStatsCache is a testify mock for service.StatsCache.
type MockStatsCache struct {
	mock.Mock
}

// NewMockStatsCache creates the mock and registers cleanup assertions.
func NewMockStatsCache(t *testing.T) *MockStatsCache {
	m := &MockStatsCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.StatsCache = (*MockStatsCache)(nil)

func (m *MockStatsCache) GetAdminStatistics(ctx context.Context) (*fulfillment.AdminStatistics, bool, error) {
	args := m.Called(ctx)

	var r0 *fulfillment.AdminStatistics
	if v := args.Get(0); v != nil {
		r0 = v.(*fulfillment.AdminStatistics)
	}

	return r0, args.Bool(1), args.Error(2)
}

func (m *MockStatsCache) SetAdminStatistics(ctx context.Context, stats *fulfillment.AdminStatistics) error {
	args := m.Called(ctx, stats)

	return args.Error(0)
}

// EXPECT returns the expectation builder for the mock.
func (m *MockStatsCache) EXPECT() *MockStatsCacheExpecter {
	return &MockStatsCacheExpecter{mock: &m.Mock}
}

// MockStatsCacheExpecter builds call expectations.
type MockStatsCacheExpecter struct {
	mock *mock.Mock
}

func (e *MockStatsCacheExpecter) GetAdminStatistics(ctx any) *mock.Call {
	return e.mock.On("GetAdminStatistics", ctx)
}

func (e *MockStatsCacheExpecter) SetAdminStatistics(ctx, stats any) *mock.Call {
	return e.mock.On("SetAdminStatistics", ctx, stats)
}
