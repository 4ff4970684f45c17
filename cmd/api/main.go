package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mbakke/torget/internal/config"
	"github.com/mbakke/torget/internal/database"
	"github.com/mbakke/torget/internal/history"
	historyStore "github.com/mbakke/torget/internal/history/store"
	torgetHttp "github.com/mbakke/torget/internal/http"
	"github.com/mbakke/torget/internal/http/auth"
	historyHandler "github.com/mbakke/torget/internal/http/history"
	listingHandler "github.com/mbakke/torget/internal/http/listing"
	notificationHandler "github.com/mbakke/torget/internal/http/notification"
	offerHandler "github.com/mbakke/torget/internal/http/offer"
	paymentHandler "github.com/mbakke/torget/internal/http/payment"
	"github.com/mbakke/torget/internal/listing"
	listingStore "github.com/mbakke/torget/internal/listing/store"
	"github.com/mbakke/torget/internal/notification"
	notificationStore "github.com/mbakke/torget/internal/notification/store"
	"github.com/mbakke/torget/internal/offer"
	offerStore "github.com/mbakke/torget/internal/offer/store"
	"github.com/mbakke/torget/internal/payment"
	paymentStore "github.com/mbakke/torget/internal/payment/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		notificationService = notification.NewService(notificationStore.New(db))
		historyService      = history.NewService(historyStore.New(db))
		listingService      = listing.NewService(listingStore.New(db), historyService)
		offerService        = offer.NewService(offerStore.New(db), listingService, notificationService)
		paymentService      = payment.NewService(paymentStore.New(db), notificationService)
	)

	var (
		listingH      = listingHandler.NewHandler(listingService)
		offerH        = offerHandler.NewHandler(offerService)
		paymentH      = paymentHandler.NewHandler(paymentService)
		notificationH = notificationHandler.NewHandler(notificationService)
		historyH      = historyHandler.NewHandler(historyService)
	)

	authMW := auth.NewMiddleware(cfg.JWT.Secret)
	router := torgetHttp.New(authMW, listingH, offerH, paymentH, notificationH, historyH)

	go sweepExpiredOffers(context.Background(), offerService, cfg.Offers.SweepInterval)
	go purgeReadNotifications(context.Background(), notificationService)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func sweepExpiredOffers(ctx context.Context, svc *offer.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if _, err := svc.SweepExpired(ctx, time.Now()); err != nil {
			slog.Error("offer expiry sweep failed", "error", err)
		}
	}
}

// purgeReadNotifications trims read inbox entries older than 30 days, once a
// day.
func purgeReadNotifications(ctx context.Context, svc *notification.Service) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if _, err := svc.PurgeRead(ctx, time.Now().AddDate(0, 0, -30)); err != nil {
			slog.Error("notification purge failed", "error", err)
		}
	}
}
