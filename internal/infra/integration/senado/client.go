package senado

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/xavierca1/parlamentares/internal/entity"
)

const (
	BaseURL = "https://legis.senado.leg.br/dadosabertos"

	DefaultVotesLimit = 20
)

var ErrSenatorNotFound = errors.New("senador não encontrado")

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
		logger:  logger.WithField("adapter", "senado"),
	}
}

// ListCurrent baixa a lista inteira de senadores em exercício.
// Não existe endpoint de registro único nem filtro por nome no servidor.
func (c *Client) ListCurrent(ctx context.Context) ([]entity.Senator, error) {
	doc, err := c.fetcher.GetJSON(ctx, c.baseURL+"/senador/lista/atual")
	if err != nil {
		return nil, fmt.Errorf("falha ao obter senadores: %w", err)
	}

	records := rosterPaths.List(doc)
	senators := make([]entity.Senator, 0, len(records))
	for _, r := range records {
		senators = append(senators, mapSenator(r))
	}
	return senators, nil
}

// SearchLegislators filtra a lista no cliente, sem diferenciar maiúsculas nem
// acentos ("Joao" encontra "João").
//
// Só funciona porque a lista tem ~81 nomes; não serve de modelo para bases maiores.
func (c *Client) SearchLegislators(ctx context.Context, name string) ([]entity.Senator, error) {
	all, err := c.ListCurrent(ctx)
	if err != nil {
		return nil, err
	}

	q := FoldName(strings.TrimSpace(name))
	if q == "" {
		return all, nil
	}

	matches := make([]entity.Senator, 0)
	for _, s := range all {
		if strings.Contains(FoldName(s.Name), q) {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

// GetSenator procura o senador na lista atual pelo código parlamentar.
func (c *Client) GetSenator(ctx context.Context, id string) (*entity.Senator, error) {
	all, err := c.ListCurrent(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrSenatorNotFound
}

// GetRecentVotes lê o histórico de votações do senador. Falha no upstream vira
// lista vazia. Registros sem código ou sem descrição são descartados. A ordem
// é a do upstream; para em `limit` registros.
func (c *Client) GetRecentVotes(ctx context.Context, id string, limit int) ([]entity.VoteRecord, error) {
	if limit <= 0 {
		limit = DefaultVotesLimit
	}

	votes := make([]entity.VoteRecord, 0)

	doc, ok := c.fetcher.TryJSON(ctx, fmt.Sprintf("%s/senador/%s/votacoes", c.baseURL, url.PathEscape(id)))
	if !ok {
		c.logger.WithField("senador", id).Warn("⚠️ histórico de votações indisponível")
		return votes, nil
	}

	skipped := 0
	for _, r := range voteListPaths.List(doc) {
		if len(votes) >= limit {
			break
		}
		v, ok := mapVoteRecord(r)
		if !ok {
			skipped++
			continue
		}
		votes = append(votes, v)
	}

	if skipped > 0 {
		c.logger.WithFields(logrus.Fields{"senador": id, "descartados": skipped}).Debug("registros de votação incompletos")
	}
	return votes, nil
}
