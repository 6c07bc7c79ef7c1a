// File: controllers/notification_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-admin/logger"
	"academy-admin/models"
	"academy-admin/services"
	"academy-admin/storage"
	"academy-admin/storage/subscription"
)

// NotificationController manages the admin browsers' push subscriptions.
type NotificationController struct {
	Registry subscription.Store
	// Broadcaster is nil when push is not configured.
	Broadcaster    services.Broadcasting
	VAPIDPublicKey string
}

func NewNotificationController(registry subscription.Store, broadcaster services.Broadcasting, publicKey string) *NotificationController {
	return &NotificationController{Registry: registry, Broadcaster: broadcaster, VAPIDPublicKey: publicKey}
}

func (nc *NotificationController) pushConfigured() bool {
	return nc.Broadcaster != nil && nc.VAPIDPublicKey != ""
}

// GetVapidPublicKey returns the application server key as plain text.
func (nc *NotificationController) GetVapidPublicKey(c *gin.Context) {
	if !nc.pushConfigured() {
		c.String(http.StatusNotFound, "Push notifications are not configured")
		return
	}
	c.String(http.StatusOK, nc.VAPIDPublicKey)
}

// SaveSubscription upserts the browser's subscription.
func (nc *NotificationController) SaveSubscription(c *gin.Context) {
	var sub models.PushSubscription
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription"})
		return
	}

	if err := nc.Registry.Upsert(c.Request.Context(), sub); err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error.Printf("SaveSubscription: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save subscription"})
		return
	}

	logger.Info.Printf("SaveSubscription: saved %s", storage.ShortEndpoint(sub.Endpoint))
	c.JSON(http.StatusCreated, gin.H{"message": "Subscription saved"})
}

// RemoveSubscription deletes one endpoint. Unknown endpoints are not an error.
func (nc *NotificationController) RemoveSubscription(c *gin.Context) {
	var body struct {
		Endpoint string `json:"endpoint" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Endpoint required"})
		return
	}

	if err := nc.Registry.Delete(c.Request.Context(), body.Endpoint); err != nil {
		logger.Error.Printf("RemoveSubscription: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not remove subscription"})
		return
	}

	logger.Info.Printf("RemoveSubscription: removed %s", storage.ShortEndpoint(body.Endpoint))
	c.JSON(http.StatusOK, gin.H{"message": "Subscription removed"})
}

// ResetSubscriptions deletes every subscription.
func (nc *NotificationController) ResetSubscriptions(c *gin.Context) {
	n, err := nc.Registry.DeleteAll(c.Request.Context())
	if err != nil {
		logger.Error.Printf("ResetSubscriptions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not reset subscriptions"})
		return
	}

	logger.Warn.Printf("ResetSubscriptions: removed all %d subscriptions", n)
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// TestNotification broadcasts a sample payload and reports the outcome.
func (nc *NotificationController) TestNotification(c *gin.Context) {
	if !nc.pushConfigured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Push notifications are not configured"})
		return
	}

	report, err := nc.Broadcaster.Broadcast(c.Request.Context(), models.NotificationPayload{
		Title: "Test notification",
		Body:  "Push notifications are working.",
		URL:   "/admin/dashboard",
	})
	if err != nil {
		logger.Error.Printf("TestNotification: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load subscriptions"})
		return
	}
	c.JSON(http.StatusOK, report)
}
