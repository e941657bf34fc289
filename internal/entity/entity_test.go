package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortVotesByDateDesc(t *testing.T) {
	votes := []VoteRecord{
		{RollCallID: "a", Date: "2024-01-10"},
		{RollCallID: "b", Date: "2024-03-05"},
		{RollCallID: "c", Date: "2024-02-01"},
	}

	SortVotesByDateDesc(votes)

	assert.Equal(t, "2024-03-05", votes[0].Date)
	assert.Equal(t, "2024-02-01", votes[1].Date)
	assert.Equal(t, "2024-01-10", votes[2].Date)
}

func TestSortVotesMixedFormatsAndMissingDates(t *testing.T) {
	votes := []VoteRecord{
		{RollCallID: "sem-data-1", Date: ""},
		{RollCallID: "antigo", Date: "2024-02-01T10:00:00"},
		{RollCallID: "sem-data-2", Date: "ontem"},
		{RollCallID: "novo", Date: "2024-02-01T18:30:00"},
	}

	SortVotesByDateDesc(votes)

	ids := []string{votes[0].RollCallID, votes[1].RollCallID, votes[2].RollCallID, votes[3].RollCallID}
	assert.Equal(t, []string{"novo", "antigo", "sem-data-1", "sem-data-2"}, ids)
}

func TestLegislatorVariants(t *testing.T) {
	var list []Legislator = []Legislator{
		Deputy{ID: 204554, Name: "Fulano", Party: "PT", State: "SP"},
		Senator{ID: "5012", Name: "Beltrana", Party: "MDB", State: "RJ"},
	}

	assert.Equal(t, ChamberDeputy, list[0].Chamber())
	assert.Equal(t, "204554", list[0].Key())
	assert.Equal(t, ChamberSenator, list[1].Chamber())
	assert.Equal(t, "5012", list[1].Key())
	assert.Equal(t, "RJ", list[1].StateAcronym())
}

func TestLegislatorJSONCarriesChamberTag(t *testing.T) {
	body, err := json.Marshal([]Legislator{
		Deputy{ID: 1, Name: "Fulano"},
		Senator{ID: "2", Name: "Beltrana"},
	})
	require.NoError(t, err)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(body, &out))

	assert.Equal(t, "Deputado", out[0]["cargo"])
	assert.Equal(t, float64(1), out[0]["id"])
	assert.Equal(t, "Senador", out[1]["cargo"])
	assert.Equal(t, "2", out[1]["id"])
	_, hasParty := out[1]["siglaPartido"]
	assert.False(t, hasParty)
}

func TestProfileDeputyFallsBackToElectoralName(t *testing.T) {
	p := &DeputyProfile{ID: 7, ElectoralName: "Dep. Fulano", CurrentStatus: DeputyStatus{Party: "PL", State: "MG"}}

	d := p.Deputy()
	assert.Equal(t, "Dep. Fulano", d.Name)
	assert.Equal(t, "PL", d.Party)
	assert.Equal(t, int64(7), d.ID)
}
