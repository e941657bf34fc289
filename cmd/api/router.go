package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/xavierca1/parlamentares/internal/config"
	"github.com/xavierca1/parlamentares/internal/infra/http/handlers"
	"github.com/xavierca1/parlamentares/internal/infra/http/middleware"
	"github.com/xavierca1/parlamentares/internal/infra/http/proxy"
)

type routeHandlers struct {
	search  *handlers.SearchHandler
	deputy  *handlers.DeputyHandler
	senator *handlers.SenatorHandler
	caption *handlers.CaptionHandler
	health  *handlers.HealthHandler
}

func newRouter(cfg config.Config, h routeHandlers, logger logrus.FieldLogger) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	r.Get("/health", h.health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/parlamentares", h.search.Handle)

	r.Route("/deputados", func(r chi.Router) {
		r.Get("/", h.deputy.HandleSearch)
		r.Get("/{id}", h.deputy.HandlePanel)
		r.Get("/{id}/perfil", h.deputy.HandleProfile)
		r.Get("/{id}/votacoes", h.deputy.HandleVotes)
		r.Get("/{id}/proposicoes", h.deputy.HandleBills)
	})

	r.Route("/senadores", func(r chi.Router) {
		r.Get("/", h.senator.HandleSearch)
		r.Get("/{id}", h.senator.HandlePanel)
		r.Get("/{id}/votacoes", h.senator.HandleVotes)
	})

	r.Get("/explicacao", h.caption.HandleExplain)
	r.Post("/legenda", h.caption.HandleCaption)

	if cfg.EnableDevProxy {
		targets := []proxy.Target{
			{
				Prefix:  proxy.CamaraPrefix,
				BaseURL: cfg.CamaraBaseURL,
				Headers: map[string]string{"Origin": cfg.CamaraOrigin},
				Service: "camara",
			},
			{Prefix: proxy.SenadoPrefix, BaseURL: cfg.SenadoBaseURL, Service: "senado"},
		}
		for _, t := range targets {
			p, err := proxy.New(t, logger)
			if err != nil {
				return nil, err
			}
			r.Handle(t.Prefix+"/*", p)
		}
	}

	return r, nil
}
