// Package services: services/notifier.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"academy-admin/logger"
	"academy-admin/models"
)

// Notifier tells the academy staff that a new lead arrived.
type Notifier interface {
	Notify(ctx context.Context, payload models.NotificationPayload) error
}

// ---------------- noop ----------------

// NoopNotifier is selected when no transport is configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(_ context.Context, payload models.NotificationPayload) error {
	logger.Debug.Printf("NoopNotifier: no transport configured, dropping %q", payload.Title)
	return nil
}

// ---------------- web push ----------------

// Broadcasting is the part of Broadcaster the push notifier needs.
type Broadcasting interface {
	Broadcast(ctx context.Context, payload models.NotificationPayload) (BroadcastReport, error)
}

// PushNotifier broadcasts the payload to every admin browser subscription.
type PushNotifier struct {
	broadcaster Broadcasting
}

func NewPushNotifier(b Broadcasting) *PushNotifier {
	return &PushNotifier{broadcaster: b}
}

func (n *PushNotifier) Notify(ctx context.Context, payload models.NotificationPayload) error {
	_, err := n.broadcaster.Broadcast(ctx, payload)
	return err
}

// ---------------- email ----------------

// EmailSender is the slice of the Resend client the email notifier uses.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailNotifier mails a plain-text summary to a fixed address.
type EmailNotifier struct {
	sender  EmailSender
	from    string
	to      []string
	siteURL string
}

// NewEmailNotifier builds a notifier sending from -> to. siteURL prefixes the
// payload's relative link in the message body.
func NewEmailNotifier(sender EmailSender, from, to, siteURL string) *EmailNotifier {
	return &EmailNotifier{
		sender:  sender,
		from:    from,
		to:      splitAddresses(to),
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

func (n *EmailNotifier) Notify(ctx context.Context, payload models.NotificationPayload) error {
	body := payload.Body
	if payload.URL != "" {
		body += "\n\nView it at " + n.siteURL + payload.URL
	}

	sent, err := n.sender.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      n.to,
		Subject: payload.Title,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	logger.Info.Printf("EmailNotifier: sent %q to %v (id %s)", payload.Title, n.to, sent.Id)
	return nil
}

func splitAddresses(list string) []string {
	var out []string
	for _, addr := range strings.Split(list, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// ---------------- fan-in ----------------

// MultiNotifier calls every notifier and joins their errors.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, payload models.NotificationPayload) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NotifierOptions describe which transports are available.
type NotifierOptions struct {
	Push      Broadcasting // nil when VAPID keys are absent
	Email     EmailSender  // nil when Resend is not configured
	EmailFrom string
	EmailTo   string
	SiteURL   string
}

// NewNotifier picks the transports that are configured. With none, the
// result is a NoopNotifier.
func NewNotifier(opts NotifierOptions) Notifier {
	var chosen MultiNotifier
	if opts.Push != nil {
		chosen = append(chosen, NewPushNotifier(opts.Push))
	}
	if opts.Email != nil {
		chosen = append(chosen, NewEmailNotifier(opts.Email, opts.EmailFrom, opts.EmailTo, opts.SiteURL))
	}

	switch len(chosen) {
	case 0:
		logger.Info.Println("NewNotifier: no notification transport configured")
		return NoopNotifier{}
	case 1:
		return chosen[0]
	default:
		return chosen
	}
}
