package prompts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jLucasZ1/contele-app/pkg/models"
)

var october = time.Date(2025, time.October, 15, 10, 0, 0, 0, time.UTC)

func TestTemporalRules(t *testing.T) {
	t.Run("mid year", func(t *testing.T) {
		rules := TemporalRules(october)
		assert.Contains(t, rules, "Ano atual: 2025")
		assert.Contains(t, rules, "Mês atual: 10")
		assert.Contains(t, rules, "[2025-10-01, 2025-11-01)")
	})

	t.Run("december rolls into next year", func(t *testing.T) {
		rules := TemporalRules(time.Date(2025, time.December, 3, 0, 0, 0, 0, time.UTC))
		assert.Contains(t, rules, "[2025-12-01, 2026-01-01)")
	})
}

func TestFilterGuidance_NoFilters(t *testing.T) {
	guidance := FilterGuidance(nil, october)
	assert.Contains(t, guidance, "Não há período padrão")
	assert.Contains(t, guidance, "infira o período a partir da pergunta")
}

func TestFilterGuidance_DateRange(t *testing.T) {
	guidance := FilterGuidance(&models.FilterContext{
		StartDate: "01/10/2025",
		EndDate:   "31/10/2025",
		Assignees: "Rafael",
	}, october)

	// Inclusive start, exclusive end-plus-one-day.
	assert.Contains(t, guidance, "'2025-10-01' (inclusive)")
	assert.Contains(t, guidance, "'2025-11-01' (exclusivo)")
	assert.Contains(t, guidance, "Vendedores selecionados no dashboard: Rafael")
	assert.Contains(t, guidance, "Empresas selecionadas no dashboard: Todas")
	assert.Contains(t, guidance, "Tipo de visita selecionado: Visão Geral")
	// The priority rule travels with the range.
	assert.Contains(t, guidance, "IGNORE o período padrão")
}

func TestFilterGuidance_PartialDates(t *testing.T) {
	guidance := FilterGuidance(&models.FilterContext{StartDate: "01/10/2025"}, october)
	assert.Contains(t, guidance, "sem datas válidas")
}

func TestFilterGuidance_UnparseableDatesPassThrough(t *testing.T) {
	guidance := FilterGuidance(&models.FilterContext{
		StartDate: "outubro",
		EndDate:   "novembro",
	}, october)
	assert.Contains(t, guidance, "'outubro'")
	assert.Contains(t, guidance, "'novembro'")
}
