package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xavierca1/parlamentares/internal/config"
	"github.com/xavierca1/parlamentares/internal/infra/http/handlers"
	"github.com/xavierca1/parlamentares/internal/infra/integration/camara"
	"github.com/xavierca1/parlamentares/internal/infra/integration/fetch"
	"github.com/xavierca1/parlamentares/internal/infra/integration/senado"
	"github.com/xavierca1/parlamentares/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("configuração inválida")
	}
	logger := cfg.NewLogger()

	// 1. Cliente HTTP compartilhado pelas duas casas
	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}

	// 2. Adapters
	camaraFetcher := fetch.NewFetcher("camara", httpClient, map[string]string{"Origin": cfg.CamaraOrigin}, logger)
	senadoFetcher := fetch.NewFetcher("senado", httpClient, nil, logger)

	camaraClient := camara.NewClient(cfg.CamaraBaseURL, camaraFetcher, logger)
	senadoClient := senado.NewClient(cfg.SenadoBaseURL, senadoFetcher, logger)

	// 3. UseCases
	searchUC := usecase.NewSearchLegislatorsUseCase(camaraClient, senadoClient, logger)
	deputyPanelUC := usecase.NewDeputyPanelUseCase(camaraClient, logger)
	senatorPanelUC := usecase.NewSenatorPanelUseCase(senadoClient, logger)

	// 4. Handlers
	h := routeHandlers{
		search:  handlers.NewSearchHandler(searchUC, logger),
		deputy:  handlers.NewDeputyHandler(camaraClient, deputyPanelUC, logger),
		senator: handlers.NewSenatorHandler(senadoClient, senatorPanelUC, logger),
		caption: handlers.NewCaptionHandler(),
		health: handlers.NewHealthHandler(map[string]string{
			"camara": cfg.CamaraBaseURL,
			"senado": cfg.SenadoBaseURL,
		}),
	}

	// 5. Router
	r, err := newRouter(cfg, h, logger)
	if err != nil {
		logger.WithError(err).Fatal("falha ao montar rotas")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.WithFields(logrus.Fields{
		"addr":      cfg.HTTPAddr,
		"camara":    cfg.CamaraBaseURL,
		"senado":    cfg.SenadoBaseURL,
		"dev_proxy": cfg.EnableDevProxy,
	}).Info("🔥 Server Parlamentares rodando")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("servidor parou")
		}
	}()

	<-ctx.Done()
	logger.Info("⚠️ encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.UpstreamTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("shutdown incompleto")
	}
}
