package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/xavierca1/parlamentares/internal/usecase"
)

type CaptionHandler struct{}

func NewCaptionHandler() *CaptionHandler {
	return &CaptionHandler{}
}

// HandleExplain (GET /explicacao?voto=&assunto=)
func (h *CaptionHandler) HandleExplain(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vote := strings.TrimSpace(q.Get("voto"))
	if vote == "" {
		writeErrorResponse(w, http.StatusBadRequest, codeMissingField, "voto é obrigatório")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"voto":       vote,
		"explicacao": usecase.GlossVote(vote, q.Get("assunto")),
	})
}

// HandleCaption (POST /legenda) monta o texto de compartilhamento.
func (h *CaptionHandler) HandleCaption(w http.ResponseWriter, r *http.Request) {
	var input usecase.CaptionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidJSON, "JSON inválido")
		return
	}

	if input.Name == "" || input.Vote == "" {
		writeErrorResponse(w, http.StatusBadRequest, codeMissingField, "nome e voto são obrigatórios")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"legenda": usecase.BuildShareCaption(input)})
}
