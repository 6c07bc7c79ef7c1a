package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"academy-admin/models"
)

// Ensure the mocks implement their interfaces
var (
	_ PushSender           = (*MockPushSender)(nil)
	_ Notifier             = (*MockNotifier)(nil)
	_ MetricsPublisher     = (*MockMetrics)(nil)
	_ CountsPublisher      = (*MockCountsPublisher)(nil)
	_ LeadServiceInterface = (*MockLeadService)(nil)
)

// MockPushSender records every Send call.
type MockPushSender struct {
	mock.Mock
}

func (m *MockPushSender) Send(ctx context.Context, sub models.PushSubscription, payload []byte) (int, error) {
	args := m.Called(ctx, sub, payload)
	return args.Int(0), args.Error(1)
}

// MockNotifier (Mocked)
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, payload models.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockMetrics (Mocked)
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) LeadCreated(kind string) {
	m.Called(kind)
}

func (m *MockMetrics) BroadcastCompleted(report BroadcastReport) {
	m.Called(report)
}

// MockCountsPublisher (Mocked)
type MockCountsPublisher struct {
	mock.Mock
}

func (m *MockCountsPublisher) PublishCounts(counts models.DashboardCounts) {
	m.Called(counts)
}

// MockLeadService is used by the controller tests.
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) SubmitTrial(ctx context.Context, t *models.TrialRegistration) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockLeadService) SubmitContact(ctx context.Context, msg *models.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockLeadService) ListTrials(ctx context.Context) ([]models.TrialRegistration, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.TrialRegistration)
	return list, args.Error(1)
}

func (m *MockLeadService) ListContacts(ctx context.Context) ([]models.ContactMessage, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.ContactMessage)
	return list, args.Error(1)
}

func (m *MockLeadService) DeleteTrial(ctx context.Context, id string) (*models.TrialRegistration, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*models.TrialRegistration)
	return t, args.Error(1)
}

func (m *MockLeadService) DeleteContact(ctx context.Context, id string) (*models.ContactMessage, error) {
	args := m.Called(ctx, id)
	msg, _ := args.Get(0).(*models.ContactMessage)
	return msg, args.Error(1)
}

func (m *MockLeadService) Counts(ctx context.Context) (models.DashboardCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.DashboardCounts), args.Error(1)
}
