package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type SearchHandler struct {
	Search LegislatorSearcher
	Logger logrus.FieldLogger
}

func NewSearchHandler(search LegislatorSearcher, logger logrus.FieldLogger) *SearchHandler {
	return &SearchHandler{Search: search, Logger: logger}
}

// Handle (GET /parlamentares?nome=) busca nas duas casas; deputados primeiro.
func (h *SearchHandler) Handle(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("nome")

	results, err := h.Search.Execute(r.Context(), name)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}
