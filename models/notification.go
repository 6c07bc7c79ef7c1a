// File: models/notification.go
package models

import (
	"fmt"
	"strings"
	"time"
)

// ---------------------- push subscription ----------------------

// SubscriptionKeys are the browser-issued encryption keys of a subscription.
type SubscriptionKeys struct {
	P256dh string `bson:"p256dh" json:"p256dh"`
	Auth   string `bson:"auth" json:"auth"`
}

// PushSubscription is one browser push channel. Endpoint is unique.
type PushSubscription struct {
	Endpoint  string           `bson:"endpoint" json:"endpoint"`
	Keys      SubscriptionKeys `bson:"keys" json:"keys"`
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
}

// Validate checks that the endpoint and both keys are present.
func (s *PushSubscription) Validate() error {
	s.Endpoint = strings.TrimSpace(s.Endpoint)
	return firstMissing(
		field{"endpoint", s.Endpoint != ""},
		field{"keys.p256dh", s.Keys.P256dh != ""},
		field{"keys.auth", s.Keys.Auth != ""},
	)
}

// ---------------------- notification payload ----------------------

// NotificationPayload is what the service worker turns into a system notification.
type NotificationPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// TrialNotification summarises a new trial registration.
func TrialNotification(t TrialRegistration) NotificationPayload {
	return NotificationPayload{
		Title: "New trial registration",
		Body:  fmt.Sprintf("%s booked a trial at %s (DOB %s, phone %d)", t.PlayerName, t.SelectedCenter, t.DateOfBirth, t.PhoneNumber),
		URL:   "/admin/trialStudents",
	}
}

// ContactNotification summarises a new contact message.
func ContactNotification(m ContactMessage) NotificationPayload {
	return NotificationPayload{
		Title: "New contact message",
		Body:  fmt.Sprintf("%s <%s>: %s", m.ContactName, m.ContactEmail, m.ContactSubject),
		URL:   "/admin/contactDetails",
	}
}
