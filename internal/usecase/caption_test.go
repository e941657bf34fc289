package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlossVotePriority(t *testing.T) {
	tests := []struct {
		vote string
		want string
	}{
		{"Sim", "Votou **A FAVOR**. Ou seja: topou a proposta."},
		{"NÃO", "Votou **CONTRA**. Em resumo: não concordou."},
		{"nao", "Votou **CONTRA**. Em resumo: não concordou."},
		{"Abstenção", "**SE ABSTEVE**. Ficou no meio do caminho."},
		{"Obstrução", "Tentou **OBSTRUIR**. Isso é atrasar/derrubar a pauta."},
		{"Artigo 17", "Voto técnico por **Artigo Regimental**. Não é sim/não direto."},
		{"P-NRV", "Registrou voto **P-NRV**."},
		{"", "Registrou voto ****."},
	}

	for _, tt := range tests {
		t.Run(tt.vote, func(t *testing.T) {
			assert.Equal(t, tt.want, GlossVote(tt.vote, ""))
		})
	}
}

func TestGlossVoteWithSubject(t *testing.T) {
	assert.Equal(t,
		"Votou **A FAVOR** no tema: PEC 45/2019. Ou seja: topou a proposta.",
		GlossVote("Sim", "PEC 45/2019"),
	)
	assert.Equal(t,
		"Voto técnico por **Artigo Regimental** no tema: MPV 1154. Não é sim/não direto.",
		GlossVote("Presidente (art. 17)", "MPV 1154"),
	)
	assert.Equal(t, "Registrou voto **Ausente** no tema: MPV 1154.", GlossVote("Ausente", "MPV 1154"))
}

func TestBuildShareCaption(t *testing.T) {
	got := BuildShareCaption(CaptionInput{
		Name:    "Fulano de Tal",
		Party:   "PSD",
		State:   "MG",
		Vote:    "Não",
		Subject: "PL 2630/2020",
		Date:    "2024-03-05T14:00:00",
	})

	want := "🗳️ Fulano de Tal (PSD-MG)\n" +
		"Como votou: Não\n" +
		"Votou CONTRA no tema: PL 2630/2020. Em resumo: não concordou.\n" +
		"Data: 05/03/2024\n" +
		"#Transparência #Política #Votações #Brasil"
	assert.Equal(t, want, got)
}

func TestBuildShareCaptionWithoutOptionalFields(t *testing.T) {
	got := BuildShareCaption(CaptionInput{Name: "Beltrana", Vote: "Sim"})

	want := "🗳️ Beltrana (-)\n" +
		"Como votou: Sim\n" +
		"Votou A FAVOR. Ou seja: topou a proposta.\n" +
		"#Transparência #Política #Votações #Brasil"
	assert.Equal(t, want, got)
}

func TestBuildShareCaptionUnreadableDateIsOmitted(t *testing.T) {
	got := BuildShareCaption(CaptionInput{Name: "X", Vote: "Sim", Date: "em breve"})
	assert.NotContains(t, got, "Data:")
}
