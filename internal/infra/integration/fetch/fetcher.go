package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/xavierca1/parlamentares/internal/infra/http/middleware"
)

const (
	outcomeOK           = "ok"
	outcomeStatusError  = "status_error"
	outcomeNetworkError = "network_error"
	outcomeInvalidJSON  = "invalid_json"
)

// Fetcher issues GET requests against one upstream open-data API and hands
// back the raw JSON document for the adapters to map.
type Fetcher struct {
	service string
	http    *http.Client
	headers map[string]string
	logger  logrus.FieldLogger
}

// NewFetcher builds a fetcher labelled with service (used in logs and metrics).
// headers are sent on every request, after the JSON accept header.
func NewFetcher(service string, httpClient *http.Client, headers map[string]string, logger logrus.FieldLogger) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Fetcher{
		service: service,
		http:    httpClient,
		headers: headers,
		logger:  logger.WithField("service", service),
	}
}

// GetJSON is the required fetch: any failure is returned to the caller.
// A non-success status yields a *RequestFailedError with the body text.
func (f *Fetcher) GetJSON(ctx context.Context, url string) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("erro ao montar request %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		f.record(outcomeNetworkError)
		return gjson.Result{}, fmt.Errorf("erro request %s: %w", f.service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.record(outcomeNetworkError)
		return gjson.Result{}, fmt.Errorf("erro ao ler resposta %s: %w", f.service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.record(outcomeStatusError)
		return gjson.Result{}, &RequestFailedError{URL: url, Status: resp.StatusCode, Body: string(body)}
	}

	if !gjson.ValidBytes(body) {
		f.record(outcomeInvalidJSON)
		return gjson.Result{}, fmt.Errorf("resposta %s não é JSON válido (%s)", f.service, url)
	}

	f.record(outcomeOK)
	return gjson.ParseBytes(body), nil
}

// TryJSON is the tolerant fetch used inside fan-out loops. It never fails:
// on any problem it logs and reports the document as absent.
func (f *Fetcher) TryJSON(ctx context.Context, url string) (gjson.Result, bool) {
	doc, err := f.GetJSON(ctx, url)
	if err != nil {
		f.logger.WithError(err).WithField("url", url).Debug("fetch tolerante ignorado")
		return gjson.Result{}, false
	}
	return doc, true
}

func (f *Fetcher) record(outcome string) {
	middleware.RecordUpstreamRequest(f.service, outcome)
	if outcome != outcomeOK {
		middleware.RecordIntegrationError(f.service)
	}
}
