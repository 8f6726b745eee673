package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jLucasZ1/contele-app/pkg/config"
	"github.com/jLucasZ1/contele-app/pkg/schema"
)

func testPersona() *config.PersonaConfig {
	return &config.PersonaConfig{
		Name:      "John",
		Role:      "Analista de Dados Sênior",
		Company:   "TecnoTop Automação",
		Tone:      "objetivo",
		Specialty: "visitas técnicas",
	}
}

func TestGeneratorSystem(t *testing.T) {
	catalog, err := schema.Load()
	require.NoError(t, err)

	system := GeneratorSystem(testPersona(), catalog, FilterGuidance(nil, october), october)

	// Persona and output contract.
	assert.Contains(t, system, "Você é John, Analista de Dados Sênior da TecnoTop Automação")
	assert.Contains(t, system, "Retornar SOMENTE SQL")

	// The catalog feeds the prompt: every permitted name is documented.
	for _, name := range catalog.Names() {
		assert.Contains(t, system, name)
	}

	// Counting rules and temporal context resolved against now.
	assert.Contains(t, system, "COUNT(DISTINCT task_id)")
	assert.Contains(t, system, "Ano atual: 2025")
	assert.Contains(t, system, "Não há período padrão")

	// History is context, never a filter.
	assert.Contains(t, system, "NUNCA como filtro automático")
}

func TestGeneratorUser(t *testing.T) {
	t.Run("question only", func(t *testing.T) {
		user := GeneratorUser("quantas visitas?", "", "")
		assert.Equal(t, "Pergunta do usuário:\nquantas visitas?", user)
	})

	t.Run("with history and context", func(t *testing.T) {
		user := GeneratorUser("e no mês passado?", "Usuário: quantas visitas?", "resumo do dashboard")
		assert.Contains(t, user, "Histórico recente da conversa")
		assert.Contains(t, user, "Usuário: quantas visitas?")
		assert.Contains(t, user, "resumo do dashboard")
	})

	t.Run("summary context truncated", func(t *testing.T) {
		long := make([]byte, 5000)
		for i := range long {
			long[i] = 'a'
		}
		user := GeneratorUser("pergunta", "", string(long))
		assert.Less(t, len(user), 3000)
	})
}

func TestInterpreterSystem(t *testing.T) {
	system := InterpreterSystem(testPersona())

	// The row-count vs metric rule is the load-bearing instruction.
	assert.Contains(t, system, "metricas_numericas")
	assert.Contains(t, system, "total_linhas")
	assert.Contains(t, system, "NÃO é o\n  total de OS")

	// Neutral narration of unclassified objectives.
	assert.Contains(t, system, "sem objetivo definido")
	assert.Contains(t, system, "NÃO trate como falha de processo")
}

func TestMetaReply(t *testing.T) {
	reply := MetaReply(testPersona())
	assert.Contains(t, reply, "John")
	assert.Contains(t, reply, "TecnoTop Automação")
	assert.Contains(t, reply, "somente leitura")
}
