// Package controllers provides HTTP handlers for the admin pages.
// File: controllers/admin_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-admin/logger"
	"academy-admin/models"
	"academy-admin/services"
	"academy-admin/storage"
	"academy-admin/storage/settings"
)

const qrCodeSize = 256

// ---------------- Admin Controller ----------------

// AdminController serves the dashboard, the lead lists and the settings form.
type AdminController struct {
	Leads    services.LeadServiceInterface
	Settings settings.Store
	// SiteURL is encoded by the QR code endpoint.
	SiteURL string
	// QREncode is nil in production; tests swap it out.
	QREncode services.QRCodeEncoder
}

func NewAdminController(leads services.LeadServiceInterface, store settings.Store, siteURL string) *AdminController {
	return &AdminController{Leads: leads, Settings: store, SiteURL: siteURL}
}

// Ping lets scripts check that their token is accepted.
func (ac *AdminController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ---------------- dashboard ----------------

// Dashboard shows how many leads of each kind are stored.
func (ac *AdminController) Dashboard(c *gin.Context) {
	counts, err := ac.Leads.Counts(c.Request.Context())
	if err != nil {
		logger.Error.Printf("Dashboard: %v", err)
		c.String(http.StatusInternalServerError, "Could not load dashboard")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"totalTrialStudents": counts.Trials,
		"totalContacts":      counts.Contacts,
		"flashes":            popFlashes(c),
	})
}

// ---------------- trial registrations ----------------

func (ac *AdminController) TrialStudents(c *gin.Context) {
	list, err := ac.Leads.ListTrials(c.Request.Context())
	if err != nil {
		logger.Error.Printf("TrialStudents: %v", err)
		c.String(http.StatusInternalServerError, "Could not load trial registrations")
		return
	}
	c.HTML(http.StatusOK, "trialStudentlist.html", gin.H{
		"trialStudent": list,
		"flashes":      popFlashes(c),
	})
}

// DeleteTrialStudent removes one registration. An unknown id sends the admin
// back to the dashboard.
func (ac *AdminController) DeleteTrialStudent(c *gin.Context) {
	id := c.Param("id")
	rec, err := ac.Leads.DeleteTrial(c.Request.Context(), id)
	switch {
	case err == nil:
		logger.Info.Printf("DeleteTrialStudent: deleted %s (%s)", id, rec.PlayerName)
		setFlash(c, flashSuccess, "Trial registration for "+rec.PlayerName+" deleted")
		c.Redirect(http.StatusFound, "/admin/trialStudents")
	case errors.Is(err, storage.ErrNotFound):
		logger.Warn.Printf("DeleteTrialStudent: %s not found", id)
		setFlash(c, flashError, "Trial registration not found")
		c.Redirect(http.StatusFound, "/admin/dashboard")
	default:
		logger.Error.Printf("DeleteTrialStudent: %v", err)
		setFlash(c, flashError, "Could not delete trial registration")
		c.Redirect(http.StatusFound, "/admin/trialStudents")
	}
}

// ---------------- contact messages ----------------

func (ac *AdminController) ContactDetails(c *gin.Context) {
	list, err := ac.Leads.ListContacts(c.Request.Context())
	if err != nil {
		logger.Error.Printf("ContactDetails: %v", err)
		c.String(http.StatusInternalServerError, "Could not load contact messages")
		return
	}
	c.HTML(http.StatusOK, "contactUs.html", gin.H{
		"contactDetails": list,
		"flashes":        popFlashes(c),
	})
}

// DeleteContactDetails mirrors DeleteTrialStudent for contact messages.
func (ac *AdminController) DeleteContactDetails(c *gin.Context) {
	id := c.Param("id")
	rec, err := ac.Leads.DeleteContact(c.Request.Context(), id)
	switch {
	case err == nil:
		logger.Info.Printf("DeleteContactDetails: deleted %s (%s)", id, rec.ContactName)
		setFlash(c, flashSuccess, "Message from "+rec.ContactName+" deleted")
		c.Redirect(http.StatusFound, "/admin/contactDetails")
	case errors.Is(err, storage.ErrNotFound):
		logger.Warn.Printf("DeleteContactDetails: %s not found", id)
		setFlash(c, flashError, "Contact message not found")
		c.Redirect(http.StatusFound, "/admin/dashboard")
	default:
		logger.Error.Printf("DeleteContactDetails: %v", err)
		setFlash(c, flashError, "Could not delete contact message")
		c.Redirect(http.StatusFound, "/admin/contactDetails")
	}
}

// ---------------- site settings ----------------

// ShowSettings renders the settings form, creating the defaults on first use.
func (ac *AdminController) ShowSettings(c *gin.Context) {
	s, err := ac.Settings.Get(c.Request.Context())
	if err != nil {
		logger.Error.Printf("ShowSettings: %v", err)
		c.String(http.StatusInternalServerError, "Could not load settings")
		return
	}
	c.HTML(http.StatusOK, "setting.html", gin.H{
		"settings": s,
		"flashes":  popFlashes(c),
	})
}

// UpdateSettings overwrites every field with the submitted form.
func (ac *AdminController) UpdateSettings(c *gin.Context) {
	var in models.SiteSettings
	if err := c.ShouldBind(&in); err != nil {
		logger.Warn.Printf("UpdateSettings: bad input: %v", err)
		setFlash(c, flashError, "Invalid settings form")
		c.Redirect(http.StatusFound, "/admin/settings")
		return
	}

	if _, err := ac.Settings.Update(c.Request.Context(), in); err != nil {
		logger.Error.Printf("UpdateSettings: %v", err)
		setFlash(c, flashError, "Could not save settings")
		c.Redirect(http.StatusFound, "/admin/settings")
		return
	}

	logger.Info.Println("UpdateSettings: site settings saved")
	setFlash(c, flashSuccess, "Settings saved")
	c.Redirect(http.StatusFound, "/admin/settings")
}

// GetSetting returns the settings document as JSON.
func (ac *AdminController) GetSetting(c *gin.Context) {
	s, err := ac.Settings.Get(c.Request.Context())
	if err != nil {
		logger.Error.Printf("GetSetting: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// ---------------- QR code ----------------

// QRCode serves a PNG linking to the public website, for printed flyers.
func (ac *AdminController) QRCode(c *gin.Context) {
	png, err := services.GenerateQRCode(ac.SiteURL, qrCodeSize, ac.QREncode)
	if err != nil {
		logger.Error.Printf("QRCode: %v", err)
		c.String(http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
