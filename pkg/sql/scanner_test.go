package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstStatement(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no semicolon",
			input:    "SELECT 1",
			expected: "SELECT 1",
		},
		{
			name:     "trailing semicolon stripped",
			input:    "SELECT 1;",
			expected: "SELECT 1",
		},
		{
			name:     "second statement dropped",
			input:    "SELECT 1; SELECT 2",
			expected: "SELECT 1",
		},
		{
			name:     "semicolon in single-quoted literal kept",
			input:    "SELECT * FROM t WHERE name = 'a;b'; SELECT 2",
			expected: "SELECT * FROM t WHERE name = 'a;b'",
		},
		{
			name:     "semicolon in double-quoted identifier kept",
			input:    `SELECT * FROM "t;x"`,
			expected: `SELECT * FROM "t;x"`,
		},
		{
			name:     "doubled quote escape",
			input:    "SELECT * FROM t WHERE name = 'O''Brien; Jr'; DROP TABLE t",
			expected: "SELECT * FROM t WHERE name = 'O''Brien; Jr'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstStatement(tt.input))
		})
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "none",
			input:    "SELECT 1",
			expected: nil,
		},
		{
			name:     "two literals",
			input:    "SELECT * FROM t WHERE a = 'x' AND b ILIKE '%y%'",
			expected: []string{"x", "%y%"},
		},
		{
			name:     "doubled quote inside literal",
			input:    "SELECT 'O''Brien'",
			expected: []string{"O'Brien"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stringLiterals(tt.input))
		})
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, "SELECT 1", stripFences("```sql\nSELECT 1\n```"))
	assert.Equal(t, "SELECT 1", stripFences("SELECT 1"))
}
