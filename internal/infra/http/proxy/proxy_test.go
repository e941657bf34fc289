package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyRewritesPathAndSetsHeaders(t *testing.T) {
	var gotPath, gotQuery, gotOrigin, gotHost string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotOrigin = r.Header.Get("Origin")
		gotHost = r.Host
		w.Write([]byte(`{"dados":[]}`))
	}))
	defer upstream.Close()

	logger, _ := test.NewNullLogger()
	h, err := New(Target{
		Prefix:  CamaraPrefix,
		BaseURL: upstream.URL + "/api/v2",
		Headers: map[string]string{"Origin": "https://dadosabertos.camara.leg.br"},
		Service: "camara",
	}, logger)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api-camara/deputados?nome=ana", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.JSONEq(t, `{"dados":[]}`, string(body))
	assert.Equal(t, "/api/v2/deputados", gotPath)
	assert.Equal(t, "nome=ana", gotQuery)
	assert.Equal(t, "https://dadosabertos.camara.leg.br", gotOrigin)
	assert.Equal(t, upstream.Listener.Addr().String(), gotHost)
}

func TestProxyUpstreamDownIs502(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	addr := upstream.URL
	upstream.Close()

	logger, hook := test.NewNullLogger()
	h, err := New(Target{Prefix: SenadoPrefix, BaseURL: addr + "/dadosabertos", Service: "senado"}, logger)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api-senado/senador/lista/atual", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotNil(t, hook.LastEntry())
}

func TestNewRejectsInvalidBaseURL(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := New(Target{Prefix: CamaraPrefix, BaseURL: "sem-esquema"}, logger)
	assert.Error(t, err)
}
