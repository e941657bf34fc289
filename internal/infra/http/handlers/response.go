package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/xavierca1/parlamentares/internal/infra/integration/fetch"
	"github.com/xavierca1/parlamentares/internal/usecase"
)

const (
	codeInvalidJSON  = "INVALID_JSON"
	codeMissingField = "MISSING_FIELDS"
	codeInternal     = "INTERNAL_ERROR"

	// a API da Câmara não aceita itens > 100
	maxItems = 100
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// writeError traduz o erro da camada de baixo para status + código.
func writeError(w http.ResponseWriter, logger logrus.FieldLogger, err error) {
	var (
		domainErr *usecase.DomainError
		upstream  *fetch.RequestFailedError
		technical *usecase.TechnicalError
	)

	switch {
	case errors.As(err, &domainErr):
		status := http.StatusBadRequest
		if domainErr.Code == usecase.CodeNotFound {
			status = http.StatusNotFound
		}
		writeErrorResponse(w, status, domainErr.Code, domainErr.Message)
	case errors.As(err, &upstream):
		writeErrorResponse(w, http.StatusBadGateway, usecase.CodeUpstream, upstream.Error())
	case errors.As(err, &technical) && technical.Code == usecase.CodeUpstream:
		writeErrorResponse(w, http.StatusBadGateway, technical.Code, technical.Error())
	default:
		logger.WithError(err).Error("❌ erro inesperado")
		writeErrorResponse(w, http.StatusInternalServerError, codeInternal, "Erro interno")
	}
}

// parseItems lê ?itens=. Ausente vale 0 (o cliente usa o padrão dele).
func parseItems(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("itens"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxItems {
		return 0, &usecase.DomainError{Code: usecase.CodeInvalidLimit, Message: "itens deve ser um número entre 1 e 100"}
	}
	return n, nil
}

func parseDeputyID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &usecase.DomainError{Code: usecase.CodeInvalidID, Message: "id de deputado inválido"}
	}
	return id, nil
}

// códigos de senador são numéricos, mas tratados como texto
func parseSenatorID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", &usecase.DomainError{Code: usecase.CodeInvalidID, Message: "id de senador inválido"}
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return "", &usecase.DomainError{Code: usecase.CodeInvalidID, Message: "id de senador inválido"}
		}
	}
	return raw, nil
}
