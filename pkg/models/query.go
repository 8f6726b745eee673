package models

// GeneratedQuery is the per-request output of the SQL generation step.
// It is never persisted.
type GeneratedQuery struct {
	RawSQL          string
	ValidatedSQL    string
	RejectionReason string
}

// Rejected reports whether validation refused the candidate statement.
func (q *GeneratedQuery) Rejected() bool {
	return q.RejectionReason != ""
}

// QueryResult holds the structured result of one executed statement.
type QueryResult struct {
	Columns []string
	Rows    [][]any
}

// Metrics extracts numeric column values from a single-row result.
//
// A one-row result is the shape produced by aggregate queries
// (SELECT COUNT(*) AS total_visitas ...). Promoting those values into a
// named map lets the interpreter distinguish the business metric from the
// row count of the result set, which for aggregates is always 1.
// Multi-row results yield an empty map.
func (r *QueryResult) Metrics() map[string]float64 {
	metrics := make(map[string]float64)
	if len(r.Rows) != 1 {
		return metrics
	}
	for i, col := range r.Columns {
		if i >= len(r.Rows[0]) {
			break
		}
		if v, ok := asNumber(r.Rows[0][i]); ok {
			metrics[col] = v
		}
	}
	return metrics
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
