package camara

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/xavierca1/parlamentares/internal/entity"
	"github.com/xavierca1/parlamentares/internal/infra/http/middleware"
)

const (
	BaseURL = "https://dadosabertos.camara.leg.br/api/v2"

	// Origin exigido pela API em alguns ambientes.
	Origin = "https://dadosabertos.camara.leg.br"

	DefaultVotesLimit = 15
	DefaultBillsLimit = 10
)

// JSONFetcher é o contrato do fetch (obrigatório e tolerante).
type JSONFetcher interface {
	GetJSON(ctx context.Context, url string) (gjson.Result, error)
	TryJSON(ctx context.Context, url string) (gjson.Result, bool)
}

type Client struct {
	baseURL string
	fetcher JSONFetcher
	logger  logrus.FieldLogger
}

func NewClient(baseURL string, fetcher JSONFetcher, logger logrus.FieldLogger) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		fetcher: fetcher,
		logger:  logger.WithField("adapter", "camara"),
	}
}

// SearchLegislators lista deputados, filtrando por nome só quando o filtro não é vazio.
func (c *Client) SearchLegislators(ctx context.Context, name string) ([]entity.Deputy, error) {
	endpoint := c.baseURL + "/deputados"
	if q := strings.TrimSpace(name); q != "" {
		qs := url.Values{}
		qs.Set("nome", q)
		endpoint += "?" + qs.Encode()
	}

	doc, err := c.fetcher.GetJSON(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	records := doc.Get("dados").Array()
	deputies := make([]entity.Deputy, 0, len(records))
	for _, r := range records {
		deputies = append(deputies, mapDeputy(r))
	}
	return deputies, nil
}

// GetProfile busca o perfil completo. Sem fallback: qualquer falha sobe.
func (c *Client) GetProfile(ctx context.Context, id int64) (*entity.DeputyProfile, error) {
	doc, err := c.fetcher.GetJSON(ctx, fmt.Sprintf("%s/deputados/%d", c.baseURL, id))
	if err != nil {
		return nil, err
	}
	return mapProfile(doc.Get("dados")), nil
}

// GetRecentVotes reconcilia o voto do deputado nas últimas `limit` votações
// registradas na Casa (de todos os deputados, não só deste).
//
// A API não tem "votos do deputado X": para cada votação buscamos a lista de
// votos e procuramos o deputado. Uma votação por vez, e uma votação que falha
// é simplesmente ignorada. Votos fora da janela não aparecem.
func (c *Client) GetRecentVotes(ctx context.Context, id int64, limit int) ([]entity.VoteRecord, error) {
	if limit <= 0 {
		limit = DefaultVotesLimit
	}

	list, err := c.fetcher.GetJSON(ctx, fmt.Sprintf(
		"%s/votacoes?itens=%d&ordem=DESC&ordenarPor=dataHoraRegistro", c.baseURL, limit,
	))
	if err != nil {
		return nil, err
	}

	results := make([]entity.VoteRecord, 0)
	for _, rollCall := range list.Get("dados").Array() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rollCallID := rollCall.Get("id").String()
		votes, ok := c.fetcher.TryJSON(ctx, fmt.Sprintf("%s/votacoes/%s/votos", c.baseURL, url.PathEscape(rollCallID)))
		if !ok {
			middleware.RecordRollCallScan("unavailable")
			continue
		}

		entry, found := findVoteOf(votes.Get("dados").Array(), id)
		if !found {
			middleware.RecordRollCallScan("absent")
			continue
		}

		middleware.RecordRollCallScan("matched")
		results = append(results, mapVoteRecord(rollCall, entry))
	}

	entity.SortVotesByDateDesc(results)

	c.logger.WithFields(logrus.Fields{
		"deputado": id,
		"janela":   limit,
		"votos":    len(results),
	}).Debug("votações reconciliadas")

	return results, nil
}

// GetAuthoredBills tenta ordenar por dataApresentacao; a API às vezes rejeita
// esse parâmetro, então há exatamente uma segunda tentativa ordenando por id.
func (c *Client) GetAuthoredBills(ctx context.Context, id int64, limit int) ([]entity.BillSummary, error) {
	if limit <= 0 {
		limit = DefaultBillsLimit
	}

	doc, err := c.fetchBills(ctx, id, limit, "dataApresentacao")
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		c.logger.WithError(err).WithField("deputado", id).Warn("⚠️ ordenarPor=dataApresentacao rejeitado, tentando ordenarPor=id")

		doc, err = c.fetchBills(ctx, id, limit, "id")
		if err != nil {
			return nil, err
		}
	}

	records := doc.Get("dados").Array()
	bills := make([]entity.BillSummary, 0, len(records))
	for _, r := range records {
		bills = append(bills, mapBill(r))
	}
	return bills, nil
}

func (c *Client) fetchBills(ctx context.Context, id int64, limit int, orderBy string) (gjson.Result, error) {
	return c.fetcher.GetJSON(ctx, fmt.Sprintf(
		"%s/proposicoes?idDeputadoAutor=%d&itens=%d&ordem=DESC&ordenarPor=%s", c.baseURL, id, limit, orderBy,
	))
}
