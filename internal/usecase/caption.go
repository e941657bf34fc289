package usecase

import (
	"fmt"
	"strings"

	"github.com/xavierca1/parlamentares/internal/entity"
)

const shareHashtags = "#Transparência #Política #Votações #Brasil"

// voteGlosses é testada em ordem; a primeira palavra-chave encontrada no voto
// (em minúsculas) decide a frase. %[1]s é o voto cru, %[2]s o trecho do tema.
var voteGlosses = []struct {
	keywords []string
	sentence string
}{
	{[]string{"sim"}, "Votou **A FAVOR**%[2]s. Ou seja: topou a proposta."},
	{[]string{"não", "nao"}, "Votou **CONTRA**%[2]s. Em resumo: não concordou."},
	{[]string{"absten"}, "**SE ABSTEVE**%[2]s. Ficou no meio do caminho."},
	{[]string{"obstru"}, "Tentou **OBSTRUIR**%[2]s. Isso é atrasar/derrubar a pauta."},
	{[]string{"art"}, "Voto técnico por **Artigo Regimental**%[2]s. Não é sim/não direto."},
}

const fallbackGloss = "Registrou voto **%[1]s**%[2]s."

// GlossVote explica o voto em uma frase, "pro povão".
func GlossVote(vote, subject string) string {
	topic := ""
	if subject != "" {
		topic = " no tema: " + subject
	}

	v := strings.ToLower(vote)
	for _, g := range voteGlosses {
		for _, kw := range g.keywords {
			if strings.Contains(v, kw) {
				return fmt.Sprintf(g.sentence, vote, topic)
			}
		}
	}
	return fmt.Sprintf(fallbackGloss, vote, topic)
}

type CaptionInput struct {
	Name    string `json:"nome"`
	Party   string `json:"partido,omitempty"`
	State   string `json:"uf,omitempty"`
	Vote    string `json:"voto"`
	Subject string `json:"assunto,omitempty"`
	Date    string `json:"data,omitempty"`
}

// BuildShareCaption monta a legenda para colar nas redes. Linhas vazias
// (inclusive a de data, quando não há data legível) são omitidas.
func BuildShareCaption(in CaptionInput) string {
	lines := []string{
		fmt.Sprintf("🗳️ %s (%s-%s)", in.Name, in.Party, in.State),
		"Como votou: " + in.Vote,
		strings.ReplaceAll(GlossVote(in.Vote, in.Subject), "**", ""),
		dateLine(in.Date),
		"",
		shareHashtags,
	}

	kept := lines[:0]
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

// dateLine formata no padrão brasileiro (dd/mm/aaaa).
func dateLine(iso string) string {
	if iso == "" {
		return ""
	}
	t, ok := entity.ParseVoteDate(iso)
	if !ok {
		return ""
	}
	return "Data: " + t.Format("02/01/2006")
}
