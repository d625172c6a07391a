package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"

	"mptransport/handlers"
)

type Options struct {
	RequestTimeout     time.Duration
	RateLimitPerMinute int
	Logger             logrus.FieldLogger
}

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func NewRouter(opts Options, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handlers.RequestLogger(opts.Logger))
	r.Use(handlers.Recoverer(opts.Logger))
	r.Use(withCORS)
	if opts.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(opts.RateLimitPerMinute, time.Minute))
	}
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/transport-records", func(r chi.Router) {
			r.Post("/", h.TransportRecords.Create)
			r.Get("/", h.TransportRecords.List)
			r.Get("/history", h.TransportRecords.History)
			r.Get("/{grNo}", h.TransportRecords.Get)
			r.Put("/{grNo}", h.TransportRecords.Update)
			r.Delete("/{grNo}", h.TransportRecords.Delete)
			r.Get("/{grNo}/invoice", h.TransportRecords.Invoice)
			r.Get("/{grNo}/pdf", h.PDF.TransportRecordPDF)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.Customers.Lookup)
			r.Get("/all-names", h.Customers.Names)
			r.Get("/all", h.Customers.List)
			r.Get("/search", h.Customers.Search)
			r.Post("/", h.Customers.Create)
			r.Put("/{name}", h.Customers.Update)
			r.Delete("/{name}", h.Customers.Delete)
		})

		r.Route("/transporters", func(r chi.Router) {
			r.Post("/", h.Transporters.Create)
			r.Get("/", h.Transporters.Search)
			r.Get("/all", h.Transporters.VehicleNumbers)
			r.Put("/{vehicleNumber}", h.Transporters.Update)
			r.Delete("/{vehicleNumber}", h.Transporters.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.Users.Create)
			r.Get("/search", h.Users.Search)
			r.Get("/all", h.Users.List)
			r.Get("/{id}", h.Users.Get)
			r.Put("/{id}", h.Users.Update)
			r.Delete("/{id}", h.Users.Delete)
		})

		r.Route("/challan", func(r chi.Router) {
			r.Post("/", h.Challans.Create)
			r.Get("/", h.Challans.List)
			r.Put("/{challanNo}", h.Challans.Update)
			r.Delete("/{challanNo}", h.Challans.Delete)
		})

		r.Route("/crossing", func(r chi.Router) {
			r.Post("/", h.Crossings.Create)
			r.Get("/", h.Crossings.List)
			r.Put("/{cxNumber}", h.Crossings.Update)
			r.Delete("/{cxNumber}", h.Crossings.Delete)
		})

		r.Route("/status", func(r chi.Router) {
			r.Post("/", h.Statuses.Create)
			r.Get("/", h.Statuses.List)
			r.Put("/{grNo}", h.Statuses.Update)
			r.Delete("/{grNo}", h.Statuses.Delete)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/", h.Payments.Create)
			r.Get("/", h.Payments.List)
			r.Get("/{invoiceNumber}", h.Payments.Get)
			r.Put("/{invoiceNumber}", h.Payments.Update)
			r.Delete("/{invoiceNumber}", h.Payments.Delete)
		})

		r.Get("/company-profile", h.CompanyProfiles.Get)
		r.Post("/company-profile", h.CompanyProfiles.Save)
		r.Get("/activity", h.Activity.List)
	})

	return r
}
