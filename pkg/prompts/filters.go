// Package prompts assembles the text blocks fed to the completion model.
// Everything here is pure text assembly over structured inputs, so prompt
// content is testable without LLM calls.
package prompts

import (
	"fmt"
	"time"

	"github.com/jLucasZ1/contele-app/pkg/models"
)

// dashboardDateLayout is the dd/mm/yyyy form the dashboard renders.
const dashboardDateLayout = "02/01/2006"

// TemporalRules renders the relative-date normalization rules resolved
// against the current wall-clock date.
func TemporalRules(now time.Time) string {
	year, month := now.Year(), int(now.Month())
	nextMonth := time.Date(year, now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return fmt.Sprintf(`🗓 REGRAS TEMPORAIS GERAIS:
- Ano atual: %d. Mês atual: %d.
- "este mês": intervalo [%d-%02d-01, %04d-%02d-01)
- "mês passado": o mês de calendário imediatamente anterior ao atual
- "mês de X" ou mês sem ano: assuma o ano %d
- Nunca usar anos anteriores a %d em nova consulta, a menos que o usuário
  os mencione explicitamente
- Períodos sempre com limite inferior inclusivo e superior exclusivo
`, year, month, year, month, nextMonth.Year(), int(nextMonth.Month()), year, year-1)
}

// FilterGuidance converts the ambient dashboard filters into the
// instruction block injected into the generation prompt.
//
// The priority rule (explicit period language in the question overrides the
// ambient range) is delegated to the model by instruction rather than
// resolved by deterministic parsing, so it is a testable-but-not-provable
// contract.
func FilterGuidance(f *models.FilterContext, now time.Time) string {
	if f == nil {
		return `📌 Não há período padrão vindo do dashboard.
- Sempre infira o período a partir da pergunta do usuário.
`
	}

	if !f.HasDateRange() {
		return `📌 Filtros do dashboard sem datas válidas.
- Infira período apenas a partir da pergunta ou use as regras temporais gerais.
`
	}

	startISO, endPlusOneISO := resolveRange(f.StartDate, f.EndDate)

	assignees := orDefault(f.Assignees, "Todos")
	accounts := orDefault(f.Accounts, "Todas")
	visitType := orDefault(f.VisitType, "Visão Geral")

	return fmt.Sprintf(`📌 CONTEXTO DE FILTROS DO DASHBOARD (usar como padrão quando o usuário NÃO especificar período):

- Período padrão: de '%s' (inclusive) até '%s' (exclusivo).
  Ao gerar SQL, quando a pergunta NÃO mencionar período, aplique:
    • Para contele.contele_os: created_at >= '%s' AND created_at < '%s'
    • Para views com os_created_at (vw_todas_os_respostas, vw_pendencias):
      os_created_at >= '%s' AND os_created_at < '%s'

- Vendedores selecionados no dashboard: %s
- Empresas selecionadas no dashboard: %s
- Tipo de visita selecionado: %s

REGRAS DE PRIORIDADE DE PERÍODO:
1. Se a pergunta DO USUÁRIO contém datas explícitas, meses, anos ou expressões
   como 'mês passado', 'este mês', 'últimos 30 dias':
   → Use APENAS o período descrito na pergunta e IGNORE o período padrão.
2. Se a pergunta NÃO menciona período de tempo:
   → Aplique OBRIGATORIAMENTE o período padrão acima nos campos de data.
`, startISO, endPlusOneISO,
		startISO, endPlusOneISO,
		startISO, endPlusOneISO,
		assignees, accounts, visitType)
}

// resolveRange converts the inclusive dd/mm/yyyy range into an inclusive
// ISO start and exclusive ISO end-plus-one-day. Unparseable inputs pass
// through verbatim so the model still sees the operator's intent.
func resolveRange(start, end string) (string, string) {
	startDate, errStart := time.Parse(dashboardDateLayout, start)
	endDate, errEnd := time.Parse(dashboardDateLayout, end)
	if errStart != nil || errEnd != nil {
		return start, end
	}
	return startDate.Format("2006-01-02"), endDate.AddDate(0, 0, 1).Format("2006-01-02")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
