package sql

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jLucasZ1/contele-app/pkg/schema"
)

// Result is the outcome of validating one candidate statement.
type Result struct {
	OK     bool
	SQL    string // corrected statement, set when OK
	Reason string // user-facing rejection reason, set when !OK
}

// Validator applies the static safety pipeline to LLM-generated SQL.
// Validation is deterministic and side-effect-free except for logging.
type Validator struct {
	catalog *schema.Catalog
	now     func() time.Time
	logger  *zap.Logger
}

// NewValidator creates a validator over the permitted-table catalog.
// now is injectable for tests; nil means time.Now.
func NewValidator(catalog *schema.Catalog, now func() time.Time, logger *zap.Logger) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{
		catalog: catalog,
		now:     now,
		logger:  logger.Named("sqlvalidator"),
	}
}

var (
	countStarPattern = regexp.MustCompile(`(?i)COUNT\s*\(\s*\*\s*\)`)
	fromJoinPattern  = regexp.MustCompile(`(?i)\b(?:FROM|JOIN)\s+([a-zA-Z0-9_.]+)`)
	yearPattern      = regexp.MustCompile(`\b(20\d{2})[-/]`)
	limitPattern     = regexp.MustCompile(`(?i)\bLIMIT\s+(\d+)`)
	limit1Pattern    = regexp.MustCompile(`(?i)\bLIMIT\s+1\b`)
)

// destructivePattern is the read-only guard keyword set. This is a textual
// token check, not a parser-level guarantee; see package tests for its
// known blind spots.
var destructivePattern = regexp.MustCompile(`\b(DROP|DELETE|UPDATE|INSERT|TRUNCATE|ALTER|CREATE|GRANT|REVOKE)\b`)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// Validate runs the full correction and rejection pipeline:
//
//  1. strip fence markup, keep only the first statement
//  2. rewrite bare COUNT(*) to COUNT(DISTINCT key) on multi-row views
//  3. require SELECT/WITH prefix
//  4. reject destructive command keywords
//  5. check FROM/JOIN qualified identifiers against the allow-list
//     (unqualified names are CTE aliases and are exempt)
//  6. reject known-nonexistent column references
//  7. reject year literals outside the accepted range
//  8. scan string literals for injection patterns
//  9. append LIMIT 100 when absent, clamp above 1000
// 10. reject unfiltered LIMIT 1 scans as too generic
//
// Running the pipeline on its own output yields no further change.
func (v *Validator) Validate(sqlText string) Result {
	stmt := firstStatement(stripFences(sqlText))

	stmt = v.forceDistinctOnMultiRowViews(stmt)

	upper := strings.ToUpper(stmt)

	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return v.reject(stmt, "❌ SQL deve começar com SELECT ou WITH")
	}

	if m := destructivePattern.FindStringSubmatch(upper); m != nil {
		return v.reject(stmt, fmt.Sprintf("❌ Comando %s não permitido", m[1]))
	}

	for _, table := range extractTables(stmt) {
		// Names without a schema qualifier are CTE aliases defined in
		// the same statement; only dotted references hit the catalog.
		if !strings.Contains(table, ".") {
			continue
		}
		if !v.catalog.Allowed(strings.ToLower(table)) {
			return v.reject(stmt, fmt.Sprintf("❌ Referência a tabela/view não permitida: %s", table))
		}
	}

	lower := strings.ToLower(stmt)
	for col, view := range v.catalog.InvalidColumns() {
		if strings.Contains(lower, col) {
			return v.reject(stmt, fmt.Sprintf(
				"❌ A coluna %s não existe em %s. Use os_created_at como referência de período.", col, view))
		}
	}

	if reason := v.checkYears(stmt); reason != "" {
		return v.reject(stmt, reason)
	}

	if reason := checkLiteralsForInjection(stmt); reason != "" {
		return v.reject(stmt, reason)
	}

	stmt = enforceLimit(stmt)

	if v.isTooGeneric(stmt) {
		return v.reject(stmt, "❌ Query muito genérica. Especifique OS, período ou objetivo.")
	}

	return Result{OK: true, SQL: stmt}
}

func (v *Validator) reject(stmt, reason string) Result {
	v.logger.Warn("sql rejected",
		zap.String("reason", reason),
		zap.String("sql", truncate(stmt, 300)))
	return Result{Reason: reason}
}

// forceDistinctOnMultiRowViews rewrites bare COUNT(*) to
// COUNT(DISTINCT <grouping key>) when the statement reads from a view where
// one visit spans several rows. COUNT(*) over such a view counts answer
// rows, not visits.
func (v *Validator) forceDistinctOnMultiRowViews(stmt string) string {
	lower := strings.ToLower(stmt)
	for _, view := range v.catalog.MultiRowViews() {
		if view.GroupingKey == "" || !strings.Contains(lower, view.Name) {
			continue
		}
		stmt = countStarPattern.ReplaceAllString(stmt, "COUNT(DISTINCT "+view.GroupingKey+")")
		break
	}
	return stmt
}

// extractTables collects identifier candidates following FROM/JOIN. CTE
// aliases land here too; the caller filters on the schema qualifier.
func extractTables(stmt string) []string {
	var tables []string
	seen := make(map[string]bool)
	for _, m := range fromJoinPattern.FindAllStringSubmatch(stmt, -1) {
		name := strings.TrimSpace(m[1])
		if name != "" && !seen[name] {
			seen[name] = true
			tables = append(tables, name)
		}
	}
	return tables
}

// checkYears rejects year literals used in date comparisons that fall
// outside [currentYear-1, currentYear]. Stale years are the most common
// hallucination in period filters.
func (v *Validator) checkYears(stmt string) string {
	currentYear := v.now().Year()
	for _, m := range yearPattern.FindAllStringSubmatch(stmt, -1) {
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if year < currentYear-1 || year > currentYear {
			return fmt.Sprintf("❌ Ano %d inválido na consulta (corrija para %d se aplicável)", year, currentYear)
		}
	}
	return ""
}

// enforceLimit appends LIMIT 100 when absent and clamps anything above
// 1000. This bounds result size, not execution time; the executor carries
// a separate statement timeout.
func enforceLimit(stmt string) string {
	m := limitPattern.FindStringSubmatch(stmt)
	if m == nil {
		return stmt + "\nLIMIT " + strconv.Itoa(defaultLimit)
	}
	limit, err := strconv.Atoi(m[1])
	if err == nil && limit > maxLimit {
		return limitPattern.ReplaceAllString(stmt, "LIMIT "+strconv.Itoa(maxLimit))
	}
	return stmt
}

// isTooGeneric flags unfiltered single-row scans of a permitted table:
// SELECT ... FROM <table> LIMIT 1 with neither WHERE nor ORDER BY answers
// nothing useful and usually means the question needs narrowing.
func (v *Validator) isTooGeneric(stmt string) bool {
	upper := strings.ToUpper(stmt)
	if !limit1Pattern.MatchString(stmt) {
		return false
	}
	if strings.Contains(upper, "WHERE") || strings.Contains(upper, "ORDER BY") {
		return false
	}
	for _, table := range extractTables(stmt) {
		if strings.Contains(table, ".") && v.catalog.Allowed(strings.ToLower(table)) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
