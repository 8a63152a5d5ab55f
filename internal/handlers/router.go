package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	mW "github.com/ravandpay/creditmock/internal/middleware"
)

// apiPrefix is the business API base path. The business and provider path
// parameters are accepted but not interpreted.
const apiPrefix = "/v1/business/{business}/ravand/provider/{provider}"

// NewRouter wires middleware, the business API, the token mock, Swagger
// hosting and the static dashboard.
func NewRouter(credit *CreditHandler, token *TokenHandler) chi.Router {
	r := chi.NewRouter()

	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	// API documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/openapi.yaml"),
	))
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yaml")
	})

	r.Route(apiPrefix, func(r chi.Router) {
		r.Post("/cardholder/{cardholder_id}/credit/register", credit.Register)
		r.Post("/cardholder/{cardholder_id}/credit/adjustment", credit.Adjust)
		r.Get("/cardholder/{cardholder_id}/credit", credit.CreditHistory)
		r.Put("/cardholder/{cardholder_id}/credit/update-status", credit.UpdateStatus)
		r.Get("/cardholder/{cardholder_id}/credit/payment", credit.ListPayments)

		r.Post("/credit/adjustment", credit.BatchAdjust)
		r.Get("/credit/account", credit.ListAccounts)
		r.Get("/credit", credit.GlobalCreditHistory)
		r.Get("/credit/payment", credit.ListAllPayments)
	})

	r.Post("/v3/refreshtoken", token.RefreshToken)
	r.Post("/api/debug/simulate-payment", credit.SimulatePayment)

	// Dashboard and other static assets
	r.Handle("/*", mW.StaticFileServer("./public"))

	return r
}
