package prompts

import (
	"strings"

	"github.com/jLucasZ1/contele-app/pkg/models"
)

const (
	// historyMaxTurns bounds how many turns reach the prompt.
	historyMaxTurns = 12
	// historyMaxChars bounds the formatted history block; when over,
	// the oldest text is dropped first.
	historyMaxChars = 4000
)

// FormatHistory compacts the conversation window into a prompt block.
// assistantName labels assistant turns with the persona name. Returns ""
// for an empty history.
func FormatHistory(turns []models.Turn, assistantName string) string {
	if len(turns) == 0 {
		return ""
	}

	if len(turns) > historyMaxTurns {
		turns = turns[len(turns)-historyMaxTurns:]
	}

	var lines []string
	for _, turn := range turns {
		if turn.Text == "" {
			continue
		}
		prefix := "Usuário"
		if turn.Role == models.RoleAssistant {
			prefix = assistantName
		}
		lines = append(lines, prefix+": "+turn.Text)
	}

	formatted := strings.Join(lines, "\n")
	if len(formatted) > historyMaxChars {
		formatted = formatted[len(formatted)-historyMaxChars:]
	}
	return formatted
}
