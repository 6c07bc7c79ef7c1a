// Package services: services/webpush_sender.go
package services

import (
	"context"
	"io"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"academy-admin/logger"
	"academy-admin/models"
	"academy-admin/storage"
)

// pushTTL is how long the push service may hold an undelivered message.
const pushTTL = 60 * 60 * 24

// WebPushSender sends VAPID-signed, encrypted web push messages.
type WebPushSender struct {
	publicKey  string
	privateKey string
	subscriber string
	client     webpush.HTTPClient
}

// NewWebPushSender returns a sender for the given VAPID key pair. A nil client
// falls back to http.DefaultClient.
func NewWebPushSender(publicKey, privateKey, subscriber string, client webpush.HTTPClient) *WebPushSender {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebPushSender{
		publicKey:  publicKey,
		privateKey: privateKey,
		subscriber: subscriber,
		client:     client,
	}
}

// Send implements PushSender.
func (s *WebPushSender) Send(ctx context.Context, sub models.PushSubscription, payload []byte) (int, error) {
	target := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Keys.P256dh,
			Auth:   sub.Keys.Auth,
		},
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, target, &webpush.Options{
		HTTPClient:      s.client,
		Subscriber:      s.subscriber, // webpush-go adds mailto: automatically
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             pushTTL,
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Debug.Printf("Send: push service replied %d for %s: %s", resp.StatusCode, storage.ShortEndpoint(sub.Endpoint), detail)
	}
	return resp.StatusCode, nil
}
