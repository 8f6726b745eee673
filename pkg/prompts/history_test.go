package prompts

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jLucasZ1/contele-app/pkg/models"
)

func TestFormatHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", FormatHistory(nil, "John"))
	})

	t.Run("role labels", func(t *testing.T) {
		turns := []models.Turn{
			{Role: models.RoleUser, Text: "quantas visitas?"},
			{Role: models.RoleAssistant, Text: "Foram 42."},
		}
		formatted := FormatHistory(turns, "John")
		assert.Equal(t, "Usuário: quantas visitas?\nJohn: Foram 42.", formatted)
	})

	t.Run("only most recent turns kept", func(t *testing.T) {
		var turns []models.Turn
		for i := 0; i < 30; i++ {
			turns = append(turns, models.Turn{Role: models.RoleUser, Text: fmt.Sprintf("pergunta %d", i)})
		}
		formatted := FormatHistory(turns, "John")
		assert.NotContains(t, formatted, "pergunta 17")
		assert.Contains(t, formatted, "pergunta 18")
		assert.Contains(t, formatted, "pergunta 29")
		assert.Equal(t, historyMaxTurns, strings.Count(formatted, "\n")+1)
	})

	t.Run("char cap keeps the tail", func(t *testing.T) {
		long := strings.Repeat("x", 3000)
		turns := []models.Turn{
			{Role: models.RoleUser, Text: long},
			{Role: models.RoleUser, Text: long},
			{Role: models.RoleUser, Text: "final"},
		}
		formatted := FormatHistory(turns, "John")
		assert.LessOrEqual(t, len(formatted), historyMaxChars)
		assert.True(t, strings.HasSuffix(formatted, "final"))
	})

	t.Run("empty turns skipped", func(t *testing.T) {
		turns := []models.Turn{
			{Role: models.RoleUser, Text: ""},
			{Role: models.RoleUser, Text: "oi"},
		}
		assert.Equal(t, "Usuário: oi", FormatHistory(turns, "John"))
	})
}
