package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/stbaker/biztime/internal/http/company"
	"github.com/stbaker/biztime/internal/http/invoice"
	"github.com/stbaker/biztime/internal/http/respond"
)

func New(
	companiesH *company.Handler,
	invoicesH *invoice.Handler,
	db *sql.DB,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Get("/health", health(db))

	router.Route("/companies", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		companiesH.Routes(r)
	})

	router.Route("/invoices", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		invoicesH.Routes(r)
	})

	return router
}

type healthResponse struct {
	OK bool   `json:"ok"`
	DB string `json:"db"`
}

// health pings the database with a short timeout; never exposes
// connection details.
func health(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		resp := healthResponse{OK: true, DB: "connected"}

		status := http.StatusOK
		if err := db.PingContext(ctx); err != nil {
			resp.OK = false
			resp.DB = "error"
			status = http.StatusServiceUnavailable
		}

		respond.JSON(w, status, resp)
	}
}
