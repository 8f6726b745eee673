package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Append(t *testing.T) {
	h := NewHistory(4)
	for i := 0; i < 6; i++ {
		h.Append(RoleUser, fmt.Sprintf("pergunta %d", i))
	}

	require.Equal(t, 4, h.Len())
	turns := h.Turns()
	assert.Equal(t, "pergunta 2", turns[0].Text)
	assert.Equal(t, "pergunta 5", turns[3].Text)
}

func TestHistory_DefaultSize(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < DefaultHistorySize+5; i++ {
		h.Append(RoleAssistant, "resposta")
	}
	assert.Equal(t, DefaultHistorySize, h.Len())
}

func TestHistory_NilSafe(t *testing.T) {
	var h *History
	assert.Nil(t, h.Turns())
	assert.Equal(t, 0, h.Len())
}
