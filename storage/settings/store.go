// Package settings persists the single site-settings document.
// File: storage/settings/store.go
package settings

import (
	"context"

	"academy-admin/models"
)

// Store owns the singleton. Both methods create it when absent, so there is
// never more than one document.
type Store interface {
	// Get returns the settings, inserting the defaults first if none exist.
	Get(ctx context.Context) (*models.SiteSettings, error)
	// Update overwrites every field with in and returns the stored result.
	Update(ctx context.Context, in models.SiteSettings) (*models.SiteSettings, error)
}

// fields lists the editable fields. The id is left out so it can be used
// for both $set and $setOnInsert.
func fields(s models.SiteSettings) map[string]string {
	return map[string]string{
		"WebsiteName":           s.WebsiteName,
		"WebsiteDesciption":     s.WebsiteDesciption,
		"WebsiteEmail":          s.WebsiteEmail,
		"WebsiteNumber":         s.WebsiteNumber,
		"AboutFootballClubDes":  s.AboutFootballClubDes,
		"OrganizeTournamentDes": s.OrganizeTournamentDes,
		"AboutTheClub":          s.AboutTheClub,
	}
}

// setField is the inverse of fields for a single entry.
func setField(s *models.SiteSettings, name, v string) {
	switch name {
	case "WebsiteName":
		s.WebsiteName = v
	case "WebsiteDesciption":
		s.WebsiteDesciption = v
	case "WebsiteEmail":
		s.WebsiteEmail = v
	case "WebsiteNumber":
		s.WebsiteNumber = v
	case "AboutFootballClubDes":
		s.AboutFootballClubDes = v
	case "OrganizeTournamentDes":
		s.OrganizeTournamentDes = v
	case "AboutTheClub":
		s.AboutTheClub = v
	}
}
