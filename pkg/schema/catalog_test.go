package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	names := catalog.Names()
	assert.NotEmpty(t, names)

	// The two core sources must always be present.
	assert.True(t, catalog.Allowed("contele.contele_os"))
	assert.True(t, catalog.Allowed("contele.vw_todas_os_respostas"))
	assert.False(t, catalog.Allowed("secret.secret_table"))
	assert.False(t, catalog.Allowed("contele_os"), "unqualified names are not permitted")
}

func TestCatalog_AllowedCaseInsensitive(t *testing.T) {
	catalog := MustLoad()
	assert.True(t, catalog.Allowed("Contele.Contele_OS"))
	assert.True(t, catalog.Allowed("CONTELE.VW_PENDENCIAS"))
}

func TestCatalog_MultiRowViews(t *testing.T) {
	catalog := MustLoad()

	views := catalog.MultiRowViews()
	require.NotEmpty(t, views)

	byName := make(map[string]*Entry, len(views))
	for _, v := range views {
		byName[v.Name] = v
		// Every multi-row view must declare how to count visits over it.
		assert.NotEmpty(t, v.GroupingKey, "multi-row view %s has no grouping key", v.Name)
	}

	respostas, ok := byName["contele.vw_todas_os_respostas"]
	require.True(t, ok, "vw_todas_os_respostas must be marked multi-row")
	assert.Equal(t, "task_id", respostas.GroupingKey)

	// The one-row-per-OS table is never in the multi-row set.
	assert.NotContains(t, byName, "contele.contele_os")
}

func TestCatalog_InvalidColumns(t *testing.T) {
	catalog := MustLoad()

	cols := catalog.InvalidColumns()
	require.NotEmpty(t, cols)

	// The hallucinated pendência columns map back to their view.
	for _, col := range []string{"data_criacao_pendencia", "descricao_pendencia", "pendencia_aberta"} {
		assert.Equal(t, "contele.vw_pendencias", cols[col], "column %s", col)
	}
}

func TestCatalog_Entry(t *testing.T) {
	catalog := MustLoad()

	e := catalog.Entry("contele.vw_pendencias")
	require.NotNil(t, e)
	assert.Equal(t, "os_created_at", e.TimeColumn)

	assert.Nil(t, catalog.Entry("contele.nao_existe"))
}

func TestCatalog_UsageDoc(t *testing.T) {
	catalog := MustLoad()

	doc := catalog.UsageDoc()
	for _, name := range catalog.Names() {
		assert.Contains(t, doc, name)
	}
	assert.Contains(t, doc, "várias linhas por visita")
	assert.Contains(t, doc, "Colunas que NÃO existem")

	// Entries render in file order.
	osIdx := strings.Index(doc, "- contele.contele_os ")
	pendIdx := strings.Index(doc, "- contele.vw_pendencias ")
	require.NotEqual(t, -1, osIdx)
	require.NotEqual(t, -1, pendIdx)
	assert.Less(t, osIdx, pendIdx)
}
