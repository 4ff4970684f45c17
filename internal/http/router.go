package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mbakke/torget/internal/http/auth"
	"github.com/mbakke/torget/internal/http/history"
	"github.com/mbakke/torget/internal/http/listing"
	"github.com/mbakke/torget/internal/http/notification"
	"github.com/mbakke/torget/internal/http/offer"
	"github.com/mbakke/torget/internal/http/payment"
)

func New(
	authMW *auth.Middleware,
	listingsV1 *listing.Handler,
	offersV1 *offer.Handler,
	paymentsV1 *payment.Handler,
	notificationsV1 *notification.Handler,
	historyV1 *history.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(metricsMiddleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/listings", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			listingsV1.Routes(r, authMW)
		})

		r.Route("/offers", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Use(authMW.Require)
			offersV1.Routes(r)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Use(authMW.Require)
			paymentsV1.Routes(r)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(authMW.Require)
			notificationsV1.Routes(r)
		})

		r.Route("/history", func(r chi.Router) {
			r.Use(authMW.Require)
			historyV1.Routes(r)
		})
	})

	return router
}
