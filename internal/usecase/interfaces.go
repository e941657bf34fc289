package usecase

import (
	"context"

	"github.com/xavierca1/parlamentares/internal/entity"
)

// DeputySource é o adaptador da Câmara.
type DeputySource interface {
	SearchLegislators(ctx context.Context, name string) ([]entity.Deputy, error)
	GetProfile(ctx context.Context, id int64) (*entity.DeputyProfile, error)
	GetRecentVotes(ctx context.Context, id int64, limit int) ([]entity.VoteRecord, error)
	GetAuthoredBills(ctx context.Context, id int64, limit int) ([]entity.BillSummary, error)
}

// SenatorSource é o adaptador do Senado.
type SenatorSource interface {
	SearchLegislators(ctx context.Context, name string) ([]entity.Senator, error)
	GetSenator(ctx context.Context, id string) (*entity.Senator, error)
	GetRecentVotes(ctx context.Context, id string, limit int) ([]entity.VoteRecord, error)
}
