package sql

import (
	"fmt"

	libinjection "github.com/corazawaf/libinjection-go"
)

// checkLiteralsForInjection scans the contents of every string literal in
// the statement with libinjection. The keyword guard only sees bare tokens;
// a payload smuggled inside a quoted literal walks straight past it, so the
// literals get their own pass.
//
// Returns a user-facing reason when a literal fingerprints as SQLi, or ""
// when all literals are clean.
func checkLiteralsForInjection(stmt string) string {
	for _, literal := range stringLiterals(stmt) {
		// Short filter values ('%Rafael%', dates) are never flagged;
		// libinjection needs actual SQL structure to fingerprint.
		isSQLi, fingerprint := libinjection.IsSQLi(literal)
		if isSQLi {
			return fmt.Sprintf("❌ Valor suspeito em literal de texto (padrão %s)", string(fingerprint))
		}
	}
	return ""
}
