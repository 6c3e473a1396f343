// Package app assembles the service: config, storage, domain services and the
// HTTP server.
package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"brasilup/salesflow/internal/app/config"
	apphttp "brasilup/salesflow/internal/app/http"
	"brasilup/salesflow/internal/app/http/handlers"
	pdfgen "brasilup/salesflow/internal/domain/quote/pdf/gofpdf"
	"brasilup/salesflow/internal/infra/lookup"
	"brasilup/salesflow/internal/infra/storage/jsonstore"
	"brasilup/salesflow/internal/infra/storage/postgres"
	"brasilup/salesflow/internal/registry"
)

func Run() {
	cfg := config.MustLoad()

	var store registry.Store
	if cfg.DatabaseURL != "" {
		pg, err := postgres.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("app: connect postgres error=%v", err)
		}
		defer pg.Close()
		store = pg
		log.Printf("app: quote store backend=postgres")
	} else {
		store = jsonstore.NewQuoteStore(cfg.DataDir)
		log.Printf("app: quote store backend=json dir=%s", cfg.DataDir)
	}

	reg := registry.New(store, cfg.QuotePrefix)
	h := handlers.New(
		reg,
		jsonstore.NewCatalogStore(cfg.DataDir),
		jsonstore.NewClientStore(cfg.DataDir),
		pdfgen.New(cfg.LogoPath),
		lookup.New(cfg.BrasilAPIURL, cfg.ViaCEPURL),
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apphttp.NewRouter(cfg, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("app: listening addr=%s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
