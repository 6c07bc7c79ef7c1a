// app.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/resend/resend-go/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"academy-admin/config"
	"academy-admin/logger"
	"academy-admin/services"
	"academy-admin/storage"
	"academy-admin/storage/contact"
	"academy-admin/storage/settings"
	"academy-admin/storage/subscription"
	"academy-admin/storage/trial"
	"academy-admin/websocket"
)

// app holds the long-lived components the routes are wired to.
type app struct {
	auth     *services.AuthService
	leads    *services.LeadService
	settings settings.Store
	registry subscription.Store
	// broadcaster is nil when web push is not configured.
	broadcaster services.Broadcasting
	hub         *websocket.Hub
	mongo       *mongo.Client
}

type stores struct {
	trials   trial.Store
	contacts contact.Store
	settings settings.Store
	registry subscription.Store
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	auth, err := services.NewAuthService(services.AuthConfig{
		SigningKey:   cfg.JWTSecret,
		PasswordHash: cfg.AdminPasswordHash,
		TTL:          cfg.TokenTTL,
	})
	if err != nil {
		return nil, err
	}

	a := &app{auth: auth, hub: websocket.NewHub()}

	st, err := a.openStores(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.settings = st.settings
	a.registry = st.registry

	metrics := newMetrics(cfg)

	if cfg.PushEnabled() {
		sender := services.NewWebPushSender(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDSubscriber, pushHTTPClient(cfg))
		a.broadcaster = services.NewBroadcaster(st.registry, sender, metrics, cfg.PushTimeout)
	} else {
		logger.Info.Println("newApp: VAPID keys not set, web push disabled")
	}

	opts := services.NotifierOptions{
		Push:      a.broadcaster,
		EmailFrom: cfg.EmailFrom,
		EmailTo:   cfg.EmailTo,
		SiteURL:   cfg.AdminURL,
	}
	if cfg.EmailEnabled() {
		opts.Email = resend.NewClient(cfg.ResendAPIKey).Emails
	}

	a.leads = services.NewLeadService(st.trials, st.contacts, services.NewNotifier(opts), metrics, a.hub)

	if counts, err := a.leads.Counts(ctx); err == nil {
		a.hub.PublishCounts(counts)
	}
	return a, nil
}

// openStores connects to MongoDB when MONGODB_URI is set and falls back to
// process memory otherwise.
func (a *app) openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	if cfg.MongoURI == "" {
		logger.Warn.Println("openStores: MONGODB_URI not set, data is kept in memory only")
		return stores{
			trials:   trial.NewMemoryStore(),
			contacts: contact.NewMemoryStore(),
			settings: settings.NewMemoryStore(),
			registry: subscription.NewMemoryStore(),
		}, nil
	}

	client, err := storage.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return stores{}, err
	}
	a.mongo = client
	db := client.Database(cfg.MongoDatabase)

	registry, err := subscription.NewMongoStore(ctx, db)
	if err != nil {
		return stores{}, fmt.Errorf("prepare subscriptions: %w", err)
	}

	logger.Info.Printf("openStores: using MongoDB database %q", cfg.MongoDatabase)
	return stores{
		trials:   trial.NewMongoStore(db),
		contacts: contact.NewMongoStore(db),
		settings: settings.NewMongoStore(db),
		registry: registry,
	}, nil
}

func newMetrics(cfg *config.Config) services.MetricsPublisher {
	if !cfg.MetricsEnabled {
		return services.NoopMetrics{}
	}
	cw, err := services.NewCloudWatchMetrics()
	if err != nil {
		logger.Warn.Printf("newMetrics: CloudWatch unavailable, metrics disabled: %v", err)
		return services.NoopMetrics{}
	}
	return cw
}

// pushHTTPClient traces outgoing push requests when X-Ray is on.
func pushHTTPClient(cfg *config.Config) *http.Client {
	client := &http.Client{Timeout: cfg.PushTimeout}
	if cfg.TracingEnabled {
		return xray.Client(client)
	}
	return client
}

// Close releases the live connections and the database client.
func (a *app) Close() {
	a.hub.Close()
	if a.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.mongo.Disconnect(ctx); err != nil {
			logger.Warn.Printf("Close: mongo disconnect: %v", err)
		}
	}
}
