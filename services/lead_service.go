// Package services: services/lead_service.go
package services

import (
	"context"
	"fmt"

	"academy-admin/logger"
	"academy-admin/models"
	"academy-admin/storage/contact"
	"academy-admin/storage/trial"
)

// Lead kinds, used as the metric dimension.
const (
	LeadKindTrial   = "trial"
	LeadKindContact = "contact"
)

// CountsPublisher receives fresh dashboard counts after every change.
type CountsPublisher interface {
	PublishCounts(counts models.DashboardCounts)
}

type noopCounts struct{}

func (noopCounts) PublishCounts(models.DashboardCounts) {}

// LeadServiceInterface is what the controllers depend on.
type LeadServiceInterface interface {
	SubmitTrial(ctx context.Context, t *models.TrialRegistration) error
	SubmitContact(ctx context.Context, m *models.ContactMessage) error
	ListTrials(ctx context.Context) ([]models.TrialRegistration, error)
	ListContacts(ctx context.Context) ([]models.ContactMessage, error)
	DeleteTrial(ctx context.Context, id string) (*models.TrialRegistration, error)
	DeleteContact(ctx context.Context, id string) (*models.ContactMessage, error)
	Counts(ctx context.Context) (models.DashboardCounts, error)
}

var _ LeadServiceInterface = (*LeadService)(nil)

// LeadService stores public submissions and tells the staff about them.
type LeadService struct {
	trials   trial.Store
	contacts contact.Store
	notifier Notifier
	metrics  MetricsPublisher
	live     CountsPublisher
}

// NewLeadService wires the stores to the side channels. Nil side channels
// are replaced with no-ops.
func NewLeadService(trials trial.Store, contacts contact.Store, notifier Notifier, metrics MetricsPublisher, live CountsPublisher) *LeadService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if live == nil {
		live = noopCounts{}
	}
	return &LeadService{
		trials:   trials,
		contacts: contacts,
		notifier: notifier,
		metrics:  metrics,
		live:     live,
	}
}

// SubmitTrial persists a trial registration. Once it is stored, notification
// failures are logged and never returned.
func (s *LeadService) SubmitTrial(ctx context.Context, t *models.TrialRegistration) error {
	if err := s.trials.Create(ctx, t); err != nil {
		return fmt.Errorf("save trial registration: %w", err)
	}
	logger.Info.Printf("SubmitTrial: stored registration %s for %s", t.ID.Hex(), t.PlayerName)

	s.afterCreate(ctx, LeadKindTrial, models.TrialNotification(*t))
	return nil
}

// SubmitContact persists a contact message, then notifies best-effort.
func (s *LeadService) SubmitContact(ctx context.Context, m *models.ContactMessage) error {
	if err := s.contacts.Create(ctx, m); err != nil {
		return fmt.Errorf("save contact message: %w", err)
	}
	logger.Info.Printf("SubmitContact: stored message %s from %s", m.ID.Hex(), m.ContactName)

	s.afterCreate(ctx, LeadKindContact, models.ContactNotification(*m))
	return nil
}

// afterCreate runs the side effects of a new lead. The notifier call is
// detached from the request's cancellation so a client hanging up does not
// abort delivery.
func (s *LeadService) afterCreate(ctx context.Context, kind string, payload models.NotificationPayload) {
	s.metrics.LeadCreated(kind)
	s.publishCounts(ctx)

	if err := s.notifier.Notify(context.WithoutCancel(ctx), payload); err != nil {
		logger.Warn.Printf("afterCreate: %s notification failed: %v", kind, err)
	}
}

func (s *LeadService) ListTrials(ctx context.Context) ([]models.TrialRegistration, error) {
	return s.trials.List(ctx)
}

func (s *LeadService) ListContacts(ctx context.Context) ([]models.ContactMessage, error) {
	return s.contacts.List(ctx)
}

// DeleteTrial returns the removed registration or storage.ErrNotFound.
func (s *LeadService) DeleteTrial(ctx context.Context, id string) (*models.TrialRegistration, error) {
	rec, err := s.trials.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publishCounts(ctx)
	return rec, nil
}

// DeleteContact returns the removed message or storage.ErrNotFound.
func (s *LeadService) DeleteContact(ctx context.Context, id string) (*models.ContactMessage, error) {
	rec, err := s.contacts.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publishCounts(ctx)
	return rec, nil
}

// Counts returns the number of stored leads of each kind.
func (s *LeadService) Counts(ctx context.Context) (models.DashboardCounts, error) {
	trials, err := s.trials.Count(ctx)
	if err != nil {
		return models.DashboardCounts{}, fmt.Errorf("count trials: %w", err)
	}
	contacts, err := s.contacts.Count(ctx)
	if err != nil {
		return models.DashboardCounts{}, fmt.Errorf("count contacts: %w", err)
	}
	return models.DashboardCounts{Trials: trials, Contacts: contacts}, nil
}

func (s *LeadService) publishCounts(ctx context.Context) {
	counts, err := s.Counts(ctx)
	if err != nil {
		logger.Warn.Printf("publishCounts: %v", err)
		return
	}
	s.live.PublishCounts(counts)
}
