package entity

import (
	"sort"
	"time"
)

// MissingValue é o sentinela para campos que o upstream não trouxe.
const MissingValue = "—"

// VoteRecord é o voto de um parlamentar numa votação nominal.
// Vote é o texto cru do upstream ("Sim", "Não", "Abstenção", "Obstrução",
// "Artigo 17", ...), não um enum fechado.
type VoteRecord struct {
	RollCallID       string `json:"idVotacao"`
	Description      string `json:"descricao"`
	Date             string `json:"data"`
	Time             string `json:"hora,omitempty"`
	Vote             string `json:"voto"`
	PartyOrientation string `json:"orientacaoBancada,omitempty"`
}

var voteDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseVoteDate aceita os formatos de data que as APIs publicam.
func ParseVoteDate(s string) (time.Time, bool) {
	for _, layout := range voteDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortVotesByDateDesc ordena do mais recente para o mais antigo.
// Registros sem data legível vão para o fim, mantendo a ordem original entre si.
func SortVotesByDateDesc(votes []VoteRecord) {
	sort.SliceStable(votes, func(i, j int) bool {
		ti, okI := ParseVoteDate(votes[i].Date)
		tj, okJ := ParseVoteDate(votes[j].Date)
		if okI != okJ {
			return okI
		}
		return okI && ti.After(tj)
	})
}
