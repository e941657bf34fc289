package senado

import (
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/xavierca1/parlamentares/internal/entity"
	"github.com/xavierca1/parlamentares/internal/infra/integration/fieldmap"
)

var (
	rosterPaths = fieldmap.Candidates{"ListaParlamentarEmExercicio.Parlamentares.Parlamentar"}

	senatorIDPaths    = fieldmap.Candidates{"IdentificacaoParlamentar.CodigoParlamentar"}
	senatorNamePaths  = fieldmap.Candidates{"IdentificacaoParlamentar.NomeParlamentar"}
	senatorPartyPaths = fieldmap.Candidates{"IdentificacaoParlamentar.SiglaPartidoParlamentar", "IdentificacaoParlamentar.SiglaPartido"}
	senatorStatePaths = fieldmap.Candidates{"IdentificacaoParlamentar.UfParlamentar"}
	senatorPhotoPaths = fieldmap.Candidates{"IdentificacaoParlamentar.UrlFotoParlamentar"}

	voteListPaths = fieldmap.Candidates{
		"VotacoesParlamentar.Votacoes.Votacao",
		"VotacoesParlamentar.Parlamentar.Votacoes.Votacao",
	}

	voteIDPaths          = fieldmap.Candidates{"CodigoMateria", "Codigo", "CodigoSessao", "IdentificacaoMateria.CodigoMateria", "CodigoSessaoVotacao"}
	voteDescriptionPaths = fieldmap.Candidates{"DescricaoVotacao", "Descricao", "Materia.Descricao", "IdentificacaoMateria.EmentaMateria"}
	voteDatePaths        = fieldmap.Candidates{"DataSessao", "Data", "SessaoPlenaria.DataSessao"}
	voteTimePaths        = fieldmap.Candidates{"Hora", "HoraSessao", "SessaoPlenaria.HoraInicioSessao"}
	voteValuePaths       = fieldmap.Candidates{"Parlamentar.Voto", "Voto", "SiglaDescricaoVoto", "DescricaoVoto"}
)

func mapSenator(r gjson.Result) entity.Senator {
	return entity.Senator{
		ID:       senatorIDPaths.String(r, ""),
		Name:     strings.TrimSpace(senatorNamePaths.String(r, "")),
		Party:    senatorPartyPaths.String(r, ""),
		State:    senatorStatePaths.String(r, ""),
		PhotoURL: senatorPhotoPaths.String(r, ""),
	}
}

// mapVoteRecord devolve false quando falta código ou descrição.
func mapVoteRecord(r gjson.Result) (entity.VoteRecord, bool) {
	id := strings.TrimSpace(voteIDPaths.String(r, ""))
	description := strings.TrimSpace(voteDescriptionPaths.String(r, ""))
	if id == "" || description == "" {
		return entity.VoteRecord{}, false
	}

	v := entity.VoteRecord{
		RollCallID:  id,
		Description: description,
		Date:        fieldmap.Truncate(voteDatePaths.String(r, ""), 10),
		Vote:        strings.TrimSpace(voteValuePaths.String(r, "")),
	}
	if t := voteTimePaths.String(r, ""); t != "" {
		v.Time = fieldmap.Truncate(t, 5)
	}
	if v.Vote == "" {
		v.Vote = entity.MissingValue
	}
	return v, true
}

// FoldName deixa o nome em minúsculas e sem acentos: decompõe (NFD) e remove
// as marcas combinantes.
func FoldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
