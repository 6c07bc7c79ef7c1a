// file: storage/settings/store_test.go
package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"academy-admin/models"
)

func TestSetField_CoversEveryField(t *testing.T) {
	src := models.SiteSettings{
		WebsiteName:           "a",
		WebsiteDesciption:     "b",
		WebsiteEmail:          "c",
		WebsiteNumber:         "d",
		AboutFootballClubDes:  "e",
		OrganizeTournamentDes: "f",
		AboutTheClub:          "g",
	}

	var dst models.SiteSettings
	for name, v := range fields(src) {
		setField(&dst, name, v)
	}
	assert.Equal(t, src, dst)

	setField(&dst, "_id", "ignored")
	assert.Empty(t, dst.ID)
}
