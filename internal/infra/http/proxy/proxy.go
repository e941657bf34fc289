// Package proxy espelha as APIs de dados abertos durante o desenvolvimento,
// para o front falar com a mesma origem.
package proxy

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/xavierca1/parlamentares/internal/infra/http/middleware"
)

const (
	CamaraPrefix = "/api-camara"
	SenadoPrefix = "/api-senado"
)

type Target struct {
	// Prefix é removido do caminho antes de encaminhar.
	Prefix  string
	BaseURL string
	// Headers extras, ex.: Origin exigido pela Câmara.
	Headers map[string]string
	Service string
}

// New monta um ReverseProxy que troca Prefix pelo caminho de BaseURL.
func New(t Target, logger logrus.FieldLogger) (http.Handler, error) {
	base, err := url.Parse(t.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL inválida para o proxy %s: %q", t.Prefix, t.BaseURL)
	}

	rp := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.Out.URL.Path = strings.TrimPrefix(pr.In.URL.Path, t.Prefix)
			pr.Out.URL.RawPath = ""
			pr.SetURL(base)
			pr.Out.Host = base.Host
			for k, v := range t.Headers {
				pr.Out.Header.Set(k, v)
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			middleware.RecordIntegrationError(t.Service)
			logger.WithError(err).WithField("path", r.URL.Path).Error("🔥 proxy falhou")
			w.WriteHeader(http.StatusBadGateway)
		},
	}
	return rp, nil
}
