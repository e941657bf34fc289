package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/parlamentares/internal/entity"
)

type SearchLegislatorsUseCase struct {
	Deputies DeputySource
	Senators SenatorSource
	Logger   logrus.FieldLogger
}

func NewSearchLegislatorsUseCase(deputies DeputySource, senators SenatorSource, logger logrus.FieldLogger) *SearchLegislatorsUseCase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SearchLegislatorsUseCase{Deputies: deputies, Senators: senators, Logger: logger}
}

// Execute busca nas duas casas ao mesmo tempo e devolve deputados primeiro,
// depois senadores. Se qualquer uma falhar, a busca inteira falha.
func (uc *SearchLegislatorsUseCase) Execute(ctx context.Context, name string) ([]entity.Legislator, error) {
	var (
		deputies []entity.Deputy
		senators []entity.Senator
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := uc.Deputies.SearchLegislators(gctx, name)
		if err != nil {
			return fmt.Errorf("busca na câmara: %w", err)
		}
		deputies = d
		return nil
	})
	g.Go(func() error {
		s, err := uc.Senators.SearchLegislators(gctx, name)
		if err != nil {
			return fmt.Errorf("busca no senado: %w", err)
		}
		senators = s
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.Logger.WithError(err).WithField("nome", name).Error("❌ busca unificada falhou")
		return nil, err
	}

	out := make([]entity.Legislator, 0, len(deputies)+len(senators))
	for _, d := range deputies {
		out = append(out, d)
	}
	for _, s := range senators {
		out = append(out, s)
	}
	return out, nil
}
