// File: controllers/lead_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-admin/logger"
	"academy-admin/models"
	"academy-admin/services"
)

// LeadController serves the public forms of the academy website.
type LeadController struct {
	Leads services.LeadServiceInterface
	// RedirectURL is where the browser returns after a submission.
	RedirectURL string
}

func NewLeadController(leads services.LeadServiceInterface, redirectURL string) *LeadController {
	return &LeadController{Leads: leads, RedirectURL: redirectURL}
}

// SaveTrialStudent accepts a trial registration as a form post or JSON.
func (lc *LeadController) SaveTrialStudent(c *gin.Context) {
	var in models.TrialRegistration
	if err := c.ShouldBind(&in); err != nil {
		logger.Warn.Printf("SaveTrialStudent: bad input: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trial registration"})
		return
	}
	lc.finish(c, "SaveTrialStudent", lc.Leads.SubmitTrial(c.Request.Context(), &in))
}

// SaveContactDetails accepts a contact message as a form post or JSON.
func (lc *LeadController) SaveContactDetails(c *gin.Context) {
	var in models.ContactMessage
	if err := c.ShouldBind(&in); err != nil {
		logger.Warn.Printf("SaveContactDetails: bad input: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact message"})
		return
	}
	lc.finish(c, "SaveContactDetails", lc.Leads.SubmitContact(c.Request.Context(), &in))
}

func (lc *LeadController) finish(c *gin.Context, name string, err error) {
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, lc.RedirectURL)
	case errors.Is(err, models.ErrValidation):
		logger.Warn.Printf("%s: %v", name, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error.Printf("%s: %v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save your request, please try again."})
	}
}
