// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the load balancer probe.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
