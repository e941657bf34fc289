package camara

import (
	"github.com/tidwall/gjson"

	"github.com/xavierca1/parlamentares/internal/entity"
	"github.com/xavierca1/parlamentares/internal/infra/integration/fieldmap"
)

// De-para dos campos da Câmara. A ordem de cada lista é a precedência.
var (
	voterIDPaths = fieldmap.Candidates{"idDeputado", "deputado.id", "deputado.idPessoa", "deputado_.id"}

	rollCallDatePaths        = fieldmap.Candidates{"data", "dataHoraRegistro", "dataHora"}
	rollCallDescriptionPaths = fieldmap.Candidates{"descricao", "titulo", "tema"}

	voteValuePaths   = fieldmap.Candidates{"tipoVoto", "voto", "tipo"}
	orientationPaths = fieldmap.Candidates{"orientacaoBancada", "orientacao", "orientacaoPartido"}

	electoralNamePaths = fieldmap.Candidates{"nomeEleitoral", "ultimoStatus.nomeEleitoral"}
)

const defaultRollCallDescription = "Votação"

func mapDeputy(r gjson.Result) entity.Deputy {
	id, _ := fieldmap.Candidates{"id"}.Int(r)
	return entity.Deputy{
		ID:       id,
		Name:     r.Get("nome").String(),
		Party:    r.Get("siglaPartido").String(),
		State:    r.Get("siglaUf").String(),
		PhotoURL: r.Get("urlFoto").String(),
	}
}

func mapProfile(d gjson.Result) *entity.DeputyProfile {
	id, _ := fieldmap.Candidates{"id"}.Int(d)

	status := d.Get("ultimoStatus")
	p := &entity.DeputyProfile{
		ID:            id,
		CivilName:     d.Get("nomeCivil").String(),
		ElectoralName: electoralNamePaths.String(d, ""),
		CPF:           d.Get("cpf").String(),
		Sex:           d.Get("sexo").String(),
		Website:       d.Get("urlWebsite").String(),
		CurrentStatus: entity.DeputyStatus{
			Name:     status.Get("nome").String(),
			Party:    status.Get("siglaPartido").String(),
			State:    status.Get("siglaUf").String(),
			PhotoURL: status.Get("urlFoto").String(),
		},
	}

	for _, s := range d.Get("redeSocial").Array() {
		if url := s.String(); url != "" {
			p.SocialNetworks = append(p.SocialNetworks, url)
		}
	}

	if g := status.Get("gabinete"); g.IsObject() {
		p.CurrentStatus.Office = &entity.Office{
			Name:     g.Get("nome").String(),
			Email:    g.Get("email").String(),
			Phone:    g.Get("telefone").String(),
			Building: g.Get("predio").String(),
			Room:     g.Get("sala").String(),
			Floor:    g.Get("andar").String(),
		}
	}

	return p
}

// findVoteOf devolve a entrada de voto cujo id de deputado (em qualquer das
// chaves conhecidas) é igual a id.
func findVoteOf(entries []gjson.Result, id int64) (gjson.Result, bool) {
	for _, e := range entries {
		if voter, ok := voterIDPaths.Int(e); ok && voter == id {
			return e, true
		}
	}
	return gjson.Result{}, false
}

// mapVoteRecord junta a votação (data, descrição) e a entrada do deputado
// (voto, orientação).
func mapVoteRecord(rollCall, entry gjson.Result) entity.VoteRecord {
	return entity.VoteRecord{
		RollCallID:       rollCall.Get("id").String(),
		Date:             rollCallDatePaths.String(rollCall, ""),
		Description:      rollCallDescriptionPaths.String(rollCall, defaultRollCallDescription),
		Vote:             voteValuePaths.String(entry, entity.MissingValue),
		PartyOrientation: orientationPaths.String(entry, ""),
	}
}

func mapBill(r gjson.Result) entity.BillSummary {
	id, _ := fieldmap.Candidates{"id"}.Int(r)
	return entity.BillSummary{
		ID:          id,
		TypeAcronym: r.Get("siglaTipo").String(),
		Number:      r.Get("numero").String(),
		Year:        r.Get("ano").String(),
		Summary:     r.Get("ementa").String(),
		PresentedAt: r.Get("dataApresentacao").String(),
	}
}
