package fieldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestLookupFirstMatchWins(t *testing.T) {
	doc := gjson.Parse(`{"idDeputado": 10, "deputado": {"id": 20, "idPessoa": 30}}`)

	v, ok := Candidates{"idDeputado", "deputado.id", "deputado.idPessoa"}.Lookup(doc)
	assert.True(t, ok)
	assert.Equal(t, int64(10), v.Int())

	v, ok = Candidates{"deputado.idPessoa", "idDeputado"}.Lookup(doc)
	assert.True(t, ok)
	assert.Equal(t, int64(30), v.Int())
}

func TestLookupSkipsNullButKeepsEmptyString(t *testing.T) {
	doc := gjson.Parse(`{"data": null, "dataHoraRegistro": "", "dataHora": "2024-01-10"}`)

	assert.Equal(t, "", Candidates{"data", "dataHoraRegistro", "dataHora"}.String(doc, "x"))
	assert.Equal(t, "2024-01-10", Candidates{"data", "dataHora"}.String(doc, "x"))
	assert.Equal(t, "x", Candidates{"inexistente"}.String(doc, "x"))
}

func TestStringKeepsNumericText(t *testing.T) {
	doc := gjson.Parse(`{"numero": 1234, "ano": "2023"}`)

	assert.Equal(t, "1234", Candidates{"numero"}.String(doc, ""))
	assert.Equal(t, "2023", Candidates{"ano"}.String(doc, ""))
}

func TestIntCoercion(t *testing.T) {
	tests := []struct {
		name string
		json string
		want int64
		ok   bool
	}{
		{"number", `{"id": 204554}`, 204554, true},
		{"numeric string", `{"id": "204554"}`, 204554, true},
		{"padded string", `{"id": " 42 "}`, 42, true},
		{"blank string", `{"id": ""}`, 0, false},
		{"text", `{"id": "abc"}`, 0, false},
		{"missing", `{}`, 0, false},
		{"object", `{"id": {"x": 1}}`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Candidates{"id"}.Int(gjson.Parse(tt.json))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListNormalizesShapes(t *testing.T) {
	paths := Candidates{"a.b"}

	assert.Len(t, paths.List(gjson.Parse(`{"a": {"b": [{"x": 1}, {"x": 2}]}}`)), 2)
	assert.Len(t, paths.List(gjson.Parse(`{"a": {"b": {"x": 1}}}`)), 1)
	assert.Empty(t, paths.List(gjson.Parse(`{"a": {}}`)))
	assert.Empty(t, paths.List(gjson.Parse(`{"a": {"b": "texto"}}`)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "2024-03-05", Truncate("2024-03-05T14:00:00", 10))
	assert.Equal(t, "14:30", Truncate("14:30:00", 5))
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "João", Truncate("João Silva", 4))
}
