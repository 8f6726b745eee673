// Package agent implements the question-answering pipeline: intent
// classification, SQL generation, validation, execution and narration.
package agent

import "strings"

// Intent is the coarse classification of a user utterance. It gates
// whether the expensive SQL pipeline runs at all.
type Intent string

const (
	IntentCasual Intent = "casual"
	IntentMeta   Intent = "meta"
	IntentData   Intent = "data"
)

// casualWords match greetings, thanks and farewells, by exact match or
// prefix. Checked before everything else: short greetings may otherwise
// contain analytics-adjacent substrings ("oi" inside "relatório" etc.).
var casualWords = []string{
	"oi", "olá", "ola", "hey", "hi", "hello",
	"bom dia", "boa tarde", "boa noite", "bom diaa",
	"tudo bem", "como vai", "como está", "beleza", "e aí", "eai",
	"obrigado", "obrigada", "valeu", "vlw", "brigadão", "brigado",
	"tchau", "até logo", "falou", "até mais", "flw",
	"legal", "bacana", "show", "top", "massa", "dahora",
}

// metaWords match questions about the assistant itself.
var metaWords = []string{
	"quem é você", "quem você é", "quem voce é", "quem voce e",
	"o que você faz", "o que voce faz", "para que serve",
	"sua função", "se apresente", "seu papel", "sua especialidade",
	"quem és", "qual é seu nome", "qual e seu nome",
	"o que você consegue fazer", "suas capacidades",
	"como você funciona", "que tipo de pergunta",
}

// dataWords match the analytics vocabulary of the visit domain.
var dataWords = []string{
	"quantas", "quantos", "quanto", "total", "soma", "média", "media",
	"mostre", "liste", "exiba", "busque", "encontre", "procure",
	"os", "os's", "visita", "cliente", "vendedor", "técnico", "tecnico",
	"poi", "task", "objetivo", "prospecção", "prospeccao",
	"relacionamento", "levantamento", "ranking", "top",
	"último", "ultima", "mês", "mes", "ano", "período", "periodo",
	"status", "concluída", "concluida", "pendente", "finalizada",
	"comparar", "comparação", "comparacao", "diferença", "diferenca",
	"resumo", "detalhes", "informações", "informacoes",
	"relata", "foi feito", "diz", "sobre", "aprofundar", "mais sobre",
	"essa os", "desta os", "da os", "essa visita", "esse cliente",
	"consegue", "pode", "pendência", "pendencias",
}

// ClassifyIntent classifies an utterance as casual, meta or data. Pure
// function over the word lists; no side effects.
//
// Check order is casual → meta → data, and unmatched utterances default to
// data: the agent fails open toward attempting analysis rather than
// refusing.
func ClassifyIntent(utterance string) Intent {
	lower := strings.ToLower(strings.TrimSpace(utterance))

	for _, w := range casualWords {
		if lower == w || strings.HasPrefix(lower, w) {
			return IntentCasual
		}
	}
	for _, w := range metaWords {
		if strings.Contains(lower, w) {
			return IntentMeta
		}
	}
	for _, w := range dataWords {
		if strings.Contains(lower, w) {
			return IntentData
		}
	}
	return IntentData
}
