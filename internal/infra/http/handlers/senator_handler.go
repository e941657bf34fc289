package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/xavierca1/parlamentares/internal/usecase"
)

type SenatorHandler struct {
	Senators usecase.SenatorSource
	Panel    SenatorPanelLoader
	Logger   logrus.FieldLogger
}

func NewSenatorHandler(senators usecase.SenatorSource, panel SenatorPanelLoader, logger logrus.FieldLogger) *SenatorHandler {
	return &SenatorHandler{Senators: senators, Panel: panel, Logger: logger}
}

// HandleSearch (GET /senadores?nome=) sem nome devolve a lista inteira.
func (h *SenatorHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	senators, err := h.Senators.SearchLegislators(r.Context(), r.URL.Query().Get("nome"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, senators)
}

// HandlePanel (GET /senadores/{id})
func (h *SenatorHandler) HandlePanel(w http.ResponseWriter, r *http.Request) {
	id, err := parseSenatorID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	limit, err := parseItems(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	out, err := h.Panel.Execute(r.Context(), usecase.SenatorPanelInput{ID: id, VotesLimit: limit})
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleVotes (GET /senadores/{id}/votacoes?itens=) nunca falha por causa do
// upstream: histórico indisponível vira lista vazia.
func (h *SenatorHandler) HandleVotes(w http.ResponseWriter, r *http.Request) {
	id, err := parseSenatorID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	limit, err := parseItems(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	votes, err := h.Senators.GetRecentVotes(r.Context(), id, limit)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, votes)
}
