// main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/gin-gonic/gin"

	"academy-admin/config"
	"academy-admin/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := logger.InitLogger(cfg.LogDir); err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}
	logger.SetLogLevel(cfg.Env)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer app.Close()

	var handler http.Handler = setupRouter(cfg, app)
	if cfg.TracingEnabled {
		handler = xray.Handler(xray.NewFixedSegmentNamer("academy-admin"), handler)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info.Printf("Listening on :%s (env=%s)", cfg.Port, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error.Printf("Shutdown: %v", err)
	}
}
