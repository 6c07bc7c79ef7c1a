// Package services: services/broadcaster.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"academy-admin/logger"
	"academy-admin/models"
	"academy-admin/storage"
	"academy-admin/storage/subscription"
)

const defaultSendTimeout = 10 * time.Second

// PushSender delivers one encrypted payload to one subscription and reports
// the push service's HTTP status.
type PushSender interface {
	Send(ctx context.Context, sub models.PushSubscription, payload []byte) (int, error)
}

// BroadcastReport tallies the outcome of one broadcast.
type BroadcastReport struct {
	Total     int `json:"total"`
	Delivered int `json:"delivered"`
	Pruned    int `json:"pruned"`
	Failed    int `json:"failed"`
}

type sendOutcome int

const (
	outcomeDelivered sendOutcome = iota
	outcomePruned
	outcomeFailed
)

// Broadcaster fans a payload out to every registered subscription.
type Broadcaster struct {
	store   subscription.Store
	sender  PushSender
	metrics MetricsPublisher
	timeout time.Duration
}

// NewBroadcaster wires the registry to a transport. timeout bounds each send.
func NewBroadcaster(store subscription.Store, sender PushSender, metrics MetricsPublisher, timeout time.Duration) *Broadcaster {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &Broadcaster{store: store, sender: sender, metrics: metrics, timeout: timeout}
}

// Broadcast sends payload to all subscriptions concurrently and waits for
// every send to finish. Endpoints reported gone (404/410) are removed from the
// registry. Individual failures are logged and counted, never returned; the
// only error is a failure to read the registry.
func (b *Broadcaster) Broadcast(ctx context.Context, payload models.NotificationPayload) (BroadcastReport, error) {
	subs, err := b.store.List(ctx)
	if err != nil {
		return BroadcastReport{}, fmt.Errorf("load subscriptions: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return BroadcastReport{}, fmt.Errorf("encode notification: %w", err)
	}

	outcomes := make([]sendOutcome, len(subs))
	var wg sync.WaitGroup
	for i, sub := range subs {
		wg.Add(1)
		go func(i int, sub models.PushSubscription) {
			defer wg.Done()
			outcomes[i] = b.deliver(ctx, sub, body)
		}(i, sub)
	}
	wg.Wait()

	report := BroadcastReport{Total: len(subs)}
	for _, o := range outcomes {
		switch o {
		case outcomeDelivered:
			report.Delivered++
		case outcomePruned:
			report.Pruned++
		default:
			report.Failed++
		}
	}

	logger.Info.Printf("Broadcast: %q total=%d delivered=%d pruned=%d failed=%d",
		payload.Title, report.Total, report.Delivered, report.Pruned, report.Failed)
	b.metrics.BroadcastCompleted(report)
	return report, nil
}

// deliver runs one send under its own timeout.
func (b *Broadcaster) deliver(ctx context.Context, sub models.PushSubscription, body []byte) (out sendOutcome) {
	endpoint := storage.ShortEndpoint(sub.Endpoint)
	defer func() {
		if r := recover(); r != nil {
			logger.Error.Printf("deliver: panic sending to %s: %v", endpoint, r)
			out = outcomeFailed
		}
	}()

	sendCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	status, err := b.sender.Send(sendCtx, sub, body)
	switch {
	case err != nil:
		logger.Warn.Printf("deliver: failed to send to %s: %v", endpoint, err)
		return outcomeFailed

	case status == http.StatusGone || status == http.StatusNotFound:
		if err := b.store.Delete(ctx, sub.Endpoint); err != nil {
			logger.Error.Printf("deliver: could not remove dead subscription %s: %v", endpoint, err)
			return outcomeFailed
		}
		logger.Info.Printf("deliver: removed invalid subscription %s (status %d)", endpoint, status)
		return outcomePruned

	case status >= 200 && status < 300:
		logger.Debug.Printf("deliver: sent to %s (status %d)", endpoint, status)
		return outcomeDelivered

	default:
		logger.Warn.Printf("deliver: unexpected status %d for %s", status, endpoint)
		return outcomeFailed
	}
}
