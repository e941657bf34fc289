package usecase

import "github.com/xavierca1/parlamentares/internal/entity"

// ExplainedVote é o voto com a explicação e a legenda prontas para a tela.
type ExplainedVote struct {
	entity.VoteRecord
	Explanation  string `json:"explicacao"`
	ShareCaption string `json:"legenda"`
}

type DeputyPanelInput struct {
	ID         int64
	VotesLimit int
	BillsLimit int
}

type DeputyPanelOutput struct {
	Profile *entity.DeputyProfile `json:"perfil"`
	Votes   []ExplainedVote       `json:"votacoes"`
	Bills   []entity.BillSummary  `json:"proposicoes"`
}

type SenatorPanelInput struct {
	ID         string
	VotesLimit int
}

type SenatorPanelOutput struct {
	Senator *entity.Senator `json:"senador"`
	Votes   []ExplainedVote `json:"votacoes"`
}

func explainVotes(who entity.Legislator, votes []entity.VoteRecord) []ExplainedVote {
	out := make([]ExplainedVote, 0, len(votes))
	for _, v := range votes {
		out = append(out, ExplainedVote{
			VoteRecord:  v,
			Explanation: GlossVote(v.Vote, v.Description),
			ShareCaption: BuildShareCaption(CaptionInput{
				Name:    who.DisplayName(),
				Party:   who.PartyAcronym(),
				State:   who.StateAcronym(),
				Vote:    v.Vote,
				Subject: v.Description,
				Date:    v.Date,
			}),
		})
	}
	return out
}
