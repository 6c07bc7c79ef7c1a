// router.go
package main

import (
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"academy-admin/config"
	"academy-admin/controllers"
	"academy-admin/middleware"
)

const flashSessionName = "academy_flash"

func setupRouter(cfg *config.Config, a *app) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID(), middleware.SecurityHeaders())

	// Flash messages only; authentication lives in the JWT cookie.
	store := cookie.NewStore(cfg.SessionSecret)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(flashSessionName, store))

	router.LoadHTMLGlob(filepath.Join(cfg.TemplatesDir, "*.html"))
	router.Static("/static", cfg.StaticDir)

	authController := controllers.NewAuthController(a.auth, cfg.CookieName, cfg.CookieSecure)
	leadController := controllers.NewLeadController(a.leads, cfg.PublicSiteURL)
	adminController := controllers.NewAdminController(a.leads, a.settings, cfg.PublicSiteURL)
	notificationController := controllers.NewNotificationController(a.registry, a.broadcaster, cfg.VAPIDPublicKey)

	// Public routes
	router.GET("/health", controllers.Health)
	router.GET("/login", authController.ShowLoginPage)
	router.POST("/login", authController.PerformLogin)
	router.GET("/logout", authController.Logout)

	api := router.Group("/api/v1", cors.New(publicFormsCORS(cfg.PublicSiteURL)))
	{
		api.POST("/saveTrialStudents", leadController.SaveTrialStudent)
		api.POST("/saveContactDetails", leadController.SaveContactDetails)
		// Preflights need a route of their own for the group's cors handler to run.
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	// Protected routes
	admin := router.Group("/admin", middleware.AdminRequired(a.auth, cfg.CookieName))
	{
		admin.GET("", adminController.Ping)
		admin.GET("/dashboard", adminController.Dashboard)

		admin.GET("/trialStudents", adminController.TrialStudents)
		admin.POST("/trialStudents/delete/:id", adminController.DeleteTrialStudent)
		admin.GET("/contactDetails", adminController.ContactDetails)
		admin.POST("/contactDetails/delete/:id", adminController.DeleteContactDetails)

		admin.GET("/settings", adminController.ShowSettings)
		admin.POST("/settings", adminController.UpdateSettings)
		admin.GET("/getSetting", adminController.GetSetting)
		admin.GET("/qrcode", adminController.QRCode)

		admin.GET("/getVapidPublicKey", notificationController.GetVapidPublicKey)
		admin.POST("/saveSubscription", notificationController.SaveSubscription)
		admin.POST("/removeSubscription", notificationController.RemoveSubscription)
		admin.POST("/resetSubscriptions", notificationController.ResetSubscriptions)
		admin.POST("/testNotification", notificationController.TestNotification)

		admin.GET("/live", func(c *gin.Context) {
			a.hub.ServeWs(c.Writer, c.Request)
		})
	}

	return router
}

// publicFormsCORS lets the public website post to the lead endpoints.
func publicFormsCORS(siteURL string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	if u, err := url.Parse(siteURL); err == nil && u.Scheme != "" && u.Host != "" {
		cfg.AllowOrigins = []string{u.Scheme + "://" + u.Host}
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}
