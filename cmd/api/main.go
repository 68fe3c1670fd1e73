package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/stbaker/biztime/internal/company"
	companyStore "github.com/stbaker/biztime/internal/company/store"
	"github.com/stbaker/biztime/internal/config"
	"github.com/stbaker/biztime/internal/database"
	biztimeHttp "github.com/stbaker/biztime/internal/http"
	companyHandler "github.com/stbaker/biztime/internal/http/company"
	invoiceHandler "github.com/stbaker/biztime/internal/http/invoice"
	"github.com/stbaker/biztime/internal/invoice"
	invoiceStore "github.com/stbaker/biztime/internal/invoice/store"
)

func main() {
	// A missing .env is fine; the environment wins anyway.
	_ = godotenv.Load()

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
		companyService = company.NewService(companyStore.New(db))
		invoiceService = invoice.NewService(invoiceStore.New(db))
	)

	var (
		companiesH = companyHandler.NewHandler(companyService)
		invoicesH  = invoiceHandler.NewHandler(invoiceService)
	)

	router := biztimeHttp.New(companiesH, invoicesH, db)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
