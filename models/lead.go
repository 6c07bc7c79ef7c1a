// Package models defines data structures used across the application.
// File: models/lead.go
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrValidation is returned when a required field is absent or malformed.
var ErrValidation = errors.New("validation failed")

// ----------------------- trial registration -----------------------

// TrialRegistration is a public request for a trial session.
type TrialRegistration struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id" form:"-"`
	PlayerName     string             `bson:"PlayerName" json:"PlayerName" form:"PlayerName"`
	PhoneNumber    Phone              `bson:"PhoneNumber" json:"PhoneNumber" form:"PhoneNumber"`
	SelectedCenter string             `bson:"SelectedCenter" json:"SelectedCenter" form:"SelectedCenter"`
	DateOfBirth    string             `bson:"DateOfBirth" json:"DateOfBirth" form:"DateOfBirth"`
	SchoolName     string             `bson:"SchoolName,omitempty" json:"SchoolName,omitempty" form:"SchoolName"` // optional training location
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt" form:"-"`
}

// Validate trims the text fields and checks that every required one is set.
func (t *TrialRegistration) Validate() error {
	t.PlayerName = strings.TrimSpace(t.PlayerName)
	t.SelectedCenter = strings.TrimSpace(t.SelectedCenter)
	t.DateOfBirth = strings.TrimSpace(t.DateOfBirth)
	t.SchoolName = strings.TrimSpace(t.SchoolName)

	return firstMissing(
		field{"PlayerName", t.PlayerName != ""},
		field{"PhoneNumber", t.PhoneNumber > 0},
		field{"SelectedCenter", t.SelectedCenter != ""},
		field{"DateOfBirth", t.DateOfBirth != ""},
	)
}

// ------------------------ contact message ------------------------

// ContactMessage is a message left through the public contact form.
type ContactMessage struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id" form:"-"`
	ContactName    string             `bson:"ContactName" json:"ContactName" form:"ContactName"`
	ContactPhone   Phone              `bson:"ContactPhone" json:"ContactPhone" form:"ContactPhone"`
	ContactEmail   string             `bson:"ContactEmail" json:"ContactEmail" form:"ContactEmail"`
	ContactSubject string             `bson:"ContactSubject" json:"ContactSubject" form:"ContactSubject"`
	ContactMessage string             `bson:"ContactMessage" json:"ContactMessage" form:"ContactMessage"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt" form:"-"`
}

// Validate trims the text fields and checks that every required one is set.
func (m *ContactMessage) Validate() error {
	m.ContactName = strings.TrimSpace(m.ContactName)
	m.ContactEmail = strings.TrimSpace(m.ContactEmail)
	m.ContactSubject = strings.TrimSpace(m.ContactSubject)
	m.ContactMessage = strings.TrimSpace(m.ContactMessage)

	return firstMissing(
		field{"ContactName", m.ContactName != ""},
		field{"ContactPhone", m.ContactPhone > 0},
		field{"ContactEmail", m.ContactEmail != ""},
		field{"ContactSubject", m.ContactSubject != ""},
		field{"ContactMessage", m.ContactMessage != ""},
	)
}

// ------------------------ helpers ------------------------

type field struct {
	name string
	ok   bool
}

func firstMissing(fields ...field) error {
	for _, f := range fields {
		if !f.ok {
			return fmt.Errorf("%w: %s is required", ErrValidation, f.name)
		}
	}
	return nil
}

// DashboardCounts is what the admin dashboard and live feed display.
type DashboardCounts struct {
	Trials   int64 `json:"trials"`
	Contacts int64 `json:"contacts"`
}
