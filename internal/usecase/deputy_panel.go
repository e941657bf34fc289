package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/parlamentares/internal/entity"
	"github.com/xavierca1/parlamentares/internal/infra/integration/camara"
)

type DeputyPanelUseCase struct {
	Deputies DeputySource
	Logger   logrus.FieldLogger
}

func NewDeputyPanelUseCase(deputies DeputySource, logger logrus.FieldLogger) *DeputyPanelUseCase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &DeputyPanelUseCase{Deputies: deputies, Logger: logger}
}

// Execute carrega perfil, votações e proposições em paralelo. A página é uma
// coisa só: se uma parte falha, o painel inteiro falha.
func (uc *DeputyPanelUseCase) Execute(ctx context.Context, in DeputyPanelInput) (*DeputyPanelOutput, error) {
	if in.ID <= 0 {
		return nil, &DomainError{Code: CodeInvalidID, Message: "id de deputado inválido"}
	}
	if in.VotesLimit <= 0 {
		in.VotesLimit = camara.DefaultVotesLimit
	}
	if in.BillsLimit <= 0 {
		in.BillsLimit = camara.DefaultBillsLimit
	}

	var (
		profile *entity.DeputyProfile
		votes   []entity.VoteRecord
		bills   []entity.BillSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profile, err = uc.Deputies.GetProfile(gctx, in.ID)
		return err
	})
	g.Go(func() (err error) {
		votes, err = uc.Deputies.GetRecentVotes(gctx, in.ID, in.VotesLimit)
		return err
	})
	g.Go(func() (err error) {
		bills, err = uc.Deputies.GetAuthoredBills(gctx, in.ID, in.BillsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.Logger.WithError(err).WithField("deputado", in.ID).Error("❌ falha ao carregar painel do deputado")
		return nil, &TechnicalError{Code: CodeUpstream, Message: "falha ao carregar dados do parlamentar", Err: err}
	}

	return &DeputyPanelOutput{
		Profile: profile,
		Votes:   explainVotes(profile.Deputy(), votes),
		Bills:   bills,
	}, nil
}
