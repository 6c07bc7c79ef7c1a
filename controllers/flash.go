// Package controllers provides the HTTP handlers of the admin backend.
// File: controllers/flash.go
package controllers

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"academy-admin/logger"
)

const (
	flashKey     = "flash"
	flashSuccess = "success"
	flashError   = "error"
)

// Flash is a one-shot message shown after a redirect.
type Flash struct {
	Kind    string // flashSuccess or flashError
	Message string
}

// setFlash stores a message for the next page the browser loads.
func setFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(kind+"|"+message, flashKey)
	if err := session.Save(); err != nil {
		logger.Warn.Printf("setFlash: failed to save session: %v", err)
	}
}

// popFlashes returns and clears the pending messages.
func popFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	raw := session.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		logger.Warn.Printf("popFlashes: failed to save session: %v", err)
	}

	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		kind, message, found := strings.Cut(s, "|")
		if !found {
			kind, message = flashSuccess, s
		}
		out = append(out, Flash{Kind: kind, Message: message})
	}
	return out
}
