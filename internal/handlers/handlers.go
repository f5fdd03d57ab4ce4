package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	paymenthandlers "github.com/monopolygame/monopolybot/internal/handlers/payments"
	"github.com/monopolygame/monopolybot/internal/service"
)

type PaymentHandler interface {
	IPN(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PaymentHandler PaymentHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		PaymentHandler: paymenthandlers.New(s.Deposit),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/ipn", h.PaymentHandler.IPN)
	})

	return r
}
