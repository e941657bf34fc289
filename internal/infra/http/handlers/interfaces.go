package handlers

import (
	"context"

	"github.com/xavierca1/parlamentares/internal/entity"
	"github.com/xavierca1/parlamentares/internal/usecase"
)

type LegislatorSearcher interface {
	Execute(ctx context.Context, name string) ([]entity.Legislator, error)
}

type DeputyPanelLoader interface {
	Execute(ctx context.Context, in usecase.DeputyPanelInput) (*usecase.DeputyPanelOutput, error)
}

type SenatorPanelLoader interface {
	Execute(ctx context.Context, in usecase.SenatorPanelInput) (*usecase.SenatorPanelOutput, error)
}
