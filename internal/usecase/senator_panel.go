package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/parlamentares/internal/entity"
	"github.com/xavierca1/parlamentares/internal/infra/integration/senado"
)

type SenatorPanelUseCase struct {
	Senators SenatorSource
	Logger   logrus.FieldLogger
}

func NewSenatorPanelUseCase(senators SenatorSource, logger logrus.FieldLogger) *SenatorPanelUseCase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SenatorPanelUseCase{Senators: senators, Logger: logger}
}

// Execute acha o senador na lista atual e junta o histórico de votos.
// O histórico é tolerante; a lista não.
func (uc *SenatorPanelUseCase) Execute(ctx context.Context, in SenatorPanelInput) (*SenatorPanelOutput, error) {
	if in.ID == "" {
		return nil, &DomainError{Code: CodeInvalidID, Message: "id de senador inválido"}
	}

	var (
		senator *entity.Senator
		votes   []entity.VoteRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		senator, err = uc.Senators.GetSenator(gctx, in.ID)
		return err
	})
	g.Go(func() (err error) {
		votes, err = uc.Senators.GetRecentVotes(gctx, in.ID, in.VotesLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, senado.ErrSenatorNotFound) {
			return nil, &DomainError{Code: CodeNotFound, Message: "senador não encontrado"}
		}
		uc.Logger.WithError(err).WithField("senador", in.ID).Error("❌ falha ao carregar painel do senador")
		return nil, &TechnicalError{Code: CodeUpstream, Message: "falha ao carregar dados do parlamentar", Err: err}
	}

	return &SenatorPanelOutput{
		Senator: senator,
		Votes:   explainVotes(*senator, votes),
	}, nil
}
