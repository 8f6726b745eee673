package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryResult_Metrics(t *testing.T) {
	t.Run("single aggregate row promotes numeric columns", func(t *testing.T) {
		result := &QueryResult{
			Columns: []string{"total_visitas", "vendedor", "media_dias"},
			Rows:    [][]any{{int64(42), "Rafael", 3.5}},
		}
		assert.Equal(t, map[string]float64{
			"total_visitas": 42,
			"media_dias":    3.5,
		}, result.Metrics())
	})

	t.Run("multi-row result yields no metrics", func(t *testing.T) {
		result := &QueryResult{
			Columns: []string{"total"},
			Rows:    [][]any{{int64(1)}, {int64(2)}},
		}
		assert.Empty(t, result.Metrics())
	})

	t.Run("empty result yields no metrics", func(t *testing.T) {
		result := &QueryResult{Columns: []string{"total"}}
		assert.Empty(t, result.Metrics())
	})

	t.Run("driver integer widths all promote", func(t *testing.T) {
		result := &QueryResult{
			Columns: []string{"a", "b", "c", "d"},
			Rows:    [][]any{{int(1), int32(2), int64(3), float32(4)}},
		}
		assert.Equal(t, map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4}, result.Metrics())
	})

	t.Run("nulls and text are skipped", func(t *testing.T) {
		result := &QueryResult{
			Columns: []string{"total", "objetivo"},
			Rows:    [][]any{{nil, "prospecção"}},
		}
		assert.Empty(t, result.Metrics())
	})
}

func TestGeneratedQuery_Rejected(t *testing.T) {
	assert.False(t, (&GeneratedQuery{ValidatedSQL: "SELECT 1"}).Rejected())
	assert.True(t, (&GeneratedQuery{RejectionReason: "❌ Apenas SELECT"}).Rejected())
}
