package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/xavierca1/parlamentares/internal/usecase"
)

type DeputyHandler struct {
	Deputies usecase.DeputySource
	Panel    DeputyPanelLoader
	Logger   logrus.FieldLogger
}

func NewDeputyHandler(deputies usecase.DeputySource, panel DeputyPanelLoader, logger logrus.FieldLogger) *DeputyHandler {
	return &DeputyHandler{Deputies: deputies, Panel: panel, Logger: logger}
}

// HandleSearch (GET /deputados?nome=)
func (h *DeputyHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	deputies, err := h.Deputies.SearchLegislators(r.Context(), r.URL.Query().Get("nome"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, deputies)
}

// HandlePanel (GET /deputados/{id}) devolve perfil, votos explicados e proposições.
func (h *DeputyHandler) HandlePanel(w http.ResponseWriter, r *http.Request) {
	id, err := parseDeputyID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	out, err := h.Panel.Execute(r.Context(), usecase.DeputyPanelInput{ID: id})
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleProfile (GET /deputados/{id}/perfil)
func (h *DeputyHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	id, err := parseDeputyID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	profile, err := h.Deputies.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleVotes (GET /deputados/{id}/votacoes?itens=)
func (h *DeputyHandler) HandleVotes(w http.ResponseWriter, r *http.Request) {
	id, err := parseDeputyID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	limit, err := parseItems(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	votes, err := h.Deputies.GetRecentVotes(r.Context(), id, limit)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, votes)
}

// HandleBills (GET /deputados/{id}/proposicoes?itens=)
func (h *DeputyHandler) HandleBills(w http.ResponseWriter, r *http.Request) {
	id, err := parseDeputyID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	limit, err := parseItems(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	bills, err := h.Deputies.GetAuthoredBills(r.Context(), id, limit)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, bills)
}
