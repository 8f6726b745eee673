// Package schema holds the versioned catalog of tables and views the agent
// is allowed to query, together with their semantic contract.
package schema

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Entry describes one permitted table or view.
type Entry struct {
	// Name is the schema-qualified identifier, e.g. "contele.contele_os".
	Name string `yaml:"name"`

	// GroupingKey is the column that identifies one visit. Counting
	// visits over a multi-row view must use COUNT(DISTINCT GroupingKey).
	GroupingKey string `yaml:"grouping_key"`

	// TimeColumn is the column safe for period filtering.
	TimeColumn string `yaml:"time_column"`

	// MultiRowPerVisit marks views where one visit produces several rows.
	MultiRowPerVisit bool `yaml:"multi_row_per_visit"`

	// InvalidColumns lists column names the LLM recurrently hallucinates
	// for this view. References to them are rejected outright.
	InvalidColumns []string `yaml:"invalid_columns"`

	// Notes is the usage guidance injected into generation prompts.
	Notes string `yaml:"notes"`
}

// Catalog is the fixed set of permitted tables and views. Defined at build
// time, never mutated at runtime.
type Catalog struct {
	entries map[string]*Entry
	ordered []*Entry
}

type catalogFile struct {
	Tables []*Entry `yaml:"tables"`
}

// Load parses the embedded catalog document.
func Load() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Tables) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	c := &Catalog{entries: make(map[string]*Entry, len(file.Tables))}
	for _, e := range file.Tables {
		if e.Name == "" {
			return nil, fmt.Errorf("catalog entry without name")
		}
		c.entries[e.Name] = e
		c.ordered = append(c.ordered, e)
	}
	return c, nil
}

// MustLoad is Load for static initialization paths where the embedded
// catalog is known to parse.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Allowed reports whether the qualified name is a permitted table/view.
func (c *Catalog) Allowed(qualifiedName string) bool {
	_, ok := c.entries[strings.ToLower(qualifiedName)]
	return ok
}

// Entry returns the catalog entry for a qualified name, or nil.
func (c *Catalog) Entry(qualifiedName string) *Entry {
	return c.entries[strings.ToLower(qualifiedName)]
}

// Names returns all permitted qualified names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MultiRowViews returns the entries where one visit spans several rows.
// The validator rewrites bare COUNT(*) against these.
func (c *Catalog) MultiRowViews() []*Entry {
	var views []*Entry
	for _, e := range c.ordered {
		if e.MultiRowPerVisit {
			views = append(views, e)
		}
	}
	return views
}

// InvalidColumns returns the union of known-nonexistent column names across
// all entries, mapped to the view that owns the blocklist entry.
func (c *Catalog) InvalidColumns() map[string]string {
	cols := make(map[string]string)
	for _, e := range c.ordered {
		for _, col := range e.InvalidColumns {
			cols[strings.ToLower(col)] = e.Name
		}
	}
	return cols
}

// UsageDoc renders the per-view usage notes block for generation prompts.
func (c *Catalog) UsageDoc() string {
	var b strings.Builder
	b.WriteString("## TABELAS E VIEWS PERMITIDAS\n")
	for _, e := range c.ordered {
		b.WriteString("- ")
		b.WriteString(e.Name)
		if e.GroupingKey != "" {
			fmt.Fprintf(&b, " (1 visita = 1 %s", e.GroupingKey)
			if e.MultiRowPerVisit {
				b.WriteString(", várias linhas por visita")
			}
			b.WriteString(")")
		}
		b.WriteString("\n")
		if e.TimeColumn != "" {
			fmt.Fprintf(&b, "  • Coluna de período: %s\n", e.TimeColumn)
		}
		if len(e.InvalidColumns) > 0 {
			fmt.Fprintf(&b, "  • Colunas que NÃO existem: %s\n", strings.Join(e.InvalidColumns, ", "))
		}
		if e.Notes != "" {
			fmt.Fprintf(&b, "  • %s\n", strings.TrimSpace(e.Notes))
		}
	}
	return b.String()
}
