package prompts

import (
	"fmt"
	"time"

	"github.com/jLucasZ1/contele-app/pkg/config"
	"github.com/jLucasZ1/contele-app/pkg/schema"
)

// SchemaDoc renders the schema guidance document for SQL generation: the
// catalog usage notes, the critical counting rules, and worked examples
// mapping recurring business questions to canonical SQL shapes. The
// examples exist because this domain has systematic ambiguity about which
// table is the source of truth for a metric; the schema alone does not
// resolve it.
func SchemaDoc(catalog *schema.Catalog, now time.Time) string {
	return fmt.Sprintf(`# 📊 SCHEMA CONTELE

%s

## REGRAS CRÍTICAS PARA VISITAS / OS

1. "quantas visitas" / "quantas OS" / "quantos formulários" por vendedor,
   cliente ou período → PRIORIZE contele.contele_os (1 linha = 1 OS):

   SELECT COUNT(*) AS total_visitas
   FROM contele.contele_os o
   WHERE o.assignee_name ILIKE '%%Rafael%%'
     AND o.created_at >= '%[2]d-10-01'
     AND o.created_at <  '%[2]d-11-01';

2. Se usar contele.vw_todas_os_respostas para contar visitas/OS, NUNCA use
   COUNT(*). Use SEMPRE COUNT(DISTINCT task_id) — 1 task_id = 1 OS.

3. Resumo/detalhes de OS específica → SEMPRE vw_todas_os_respostas:

   SELECT question_title, answer_human, assignee_name, status, poi, os_created_at
   FROM contele.vw_todas_os_respostas
   WHERE os = '5078'
   ORDER BY question_title
   LIMIT 100;

4. Pendências → vw_pendencias ou suas views de resumo. Período de pendência
   SEMPRE baseado em os_created_at.
5. Objetivo/tipo de visita → coluna objetivo em vw_visitas_status, OU
   question_title ILIKE '%%objetivo da visita%%' em vw_todas_os_respostas.
6. SEMPRE adicionar LIMIT (<= 1000).
7. Buscas textuais com ILIKE '%%termo%%'.
8. Nunca inventar tabela ou coluna fora da lista.

## MAPA DE PERGUNTAS RECORRENTES

"Quantas pendências o vendedor X gerou no período Y?"
SELECT assignee_name, COUNT(*) AS total_pendencias
FROM contele.vw_pendencias
WHERE gerou_pendencia = true
  AND assignee_name ILIKE '%%NOME%%'
  AND os_created_at >= '<inicio>' AND os_created_at < '<fim>'
GROUP BY assignee_name
LIMIT 100;

"Quais linhas tiveram mais pendências?"
SELECT LOWER(TRIM(linha_pendencia)) AS linha, COUNT(*) AS total_pendencias
FROM contele.vw_pendencias
WHERE gerou_pendencia = true AND linha_pendencia IS NOT NULL
  AND os_created_at >= '<inicio>' AND os_created_at < '<fim>'
GROUP BY LOWER(TRIM(linha_pendencia))
ORDER BY total_pendencias DESC
LIMIT 100;

"Quantas abordagens sem sucesso ocorreram e por qual motivo?"
SELECT LOWER(TRIM(answer_human)) AS motivo, COUNT(DISTINCT task_id) AS total
FROM contele.vw_todas_os_respostas
WHERE lower(form_title) = 'abordagem sem sucesso'
  AND question_title ILIKE 'Situação Encontrada%%'
  AND os_created_at >= '<inicio>' AND os_created_at < '<fim>'
GROUP BY LOWER(TRIM(answer_human))
ORDER BY total DESC
LIMIT 100;

"Quantas visitas por objetivo no período?"
SELECT
  CASE
    WHEN status ILIKE '%%abordagem sem sucesso%%' THEN 'Abordagem sem sucesso'
    WHEN objetivo IS NULL OR TRIM(objetivo) = '' THEN 'Sem objetivo informado'
    ELSE objetivo
  END AS objetivo_legenda,
  COUNT(*) AS total
FROM contele.vw_visitas_status
WHERE created_at >= '<inicio>' AND created_at < '<fim>'
GROUP BY 1
ORDER BY total DESC
LIMIT 100;

"Quantas visitas para o segmento X?"
SELECT COUNT(DISTINCT task_id) AS total_visitas
FROM contele.vw_todas_os_respostas
WHERE question_title ILIKE '%%segmento do cliente%%'
  AND answer_human ILIKE '%%SEGMENTO%%'
  AND os_created_at >= '<inicio>' AND os_created_at < '<fim>'
LIMIT 100;

"Comparar visitas por vendedor no período"
SELECT assignee_name, COUNT(*) AS total_visitas
FROM contele.contele_os
WHERE created_at >= '<inicio>' AND created_at < '<fim>'
GROUP BY assignee_name
ORDER BY total_visitas DESC
LIMIT 100;

"Quais clientes utilizam produtos Festo, Bosch, Hengst ou Wago?"
SELECT poi, usa_festo, usa_bosch_rexroth, usa_hengst, usa_wago
FROM contele.vw_portfolio_clientes
WHERE usa_festo = true OR usa_bosch_rexroth = true
   OR usa_hengst = true OR usa_wago = true
ORDER BY poi
LIMIT 200;

"Quantos clientes ficaram sem visita nos últimos 30 dias?"
WITH clientes_visitados AS (
  SELECT DISTINCT poi
  FROM contele.contele_os
  WHERE created_at >= (CURRENT_DATE - INTERVAL '30 days')
),
todos_clientes AS (
  SELECT DISTINCT poi FROM contele.contele_os
)
SELECT COUNT(*) AS clientes_sem_visita
FROM todos_clientes c
LEFT JOIN clientes_visitados v ON c.poi = v.poi
WHERE v.poi IS NULL;
`, catalog.UsageDoc(), now.Year())
}

// GeneratorSystem assembles the full system prompt for the SQL generation
// call: persona, schema document, temporal rules, ambient filter guidance
// and output-format instructions.
func GeneratorSystem(persona *config.PersonaConfig, catalog *schema.Catalog, filterGuidance string, now time.Time) string {
	return fmt.Sprintf(`Você é %s, %s da %s.
Converta perguntas em SQL PostgreSQL válido.

%s

%s

%s

INSTRUÇÕES GERAIS:
- Usar as views e tabelas corretas conforme as regras acima.
- PARA CONTAR VISITAS / OS:
  * Prefira SEMPRE contele.contele_os (1 linha = 1 OS) com COUNT(*).
  * Em contele.vw_todas_os_respostas, use OBRIGATORIAMENTE COUNT(DISTINCT task_id).
- LIMIT obrigatório (<= 1000).
- Texto → ILIKE '%%termo%%'.
- Retornar SOMENTE SQL: uma única instrução, sem markdown e sem explicação.
- Se a pergunta for ambígua ("Qual é o número dessa OS?") → pegar a última OS:
  SELECT os, assignee_name, poi, status, created_at
  FROM contele.contele_os
  ORDER BY created_at DESC
  LIMIT 1
- O histórico de conversa serve APENAS para entender o contexto da pergunta
  ("e desse vendedor?", "e no mês passado?"), NUNCA como filtro automático de
  datas, vendedores ou clientes.`,
		persona.Name, persona.Role, persona.Company,
		SchemaDoc(catalog, now),
		TemporalRules(now),
		filterGuidance)
}

// GeneratorUser assembles the user message for the SQL generation call.
// historyBlock and summaryContext may be empty.
func GeneratorUser(question, historyBlock, summaryContext string) string {
	content := "Pergunta do usuário:\n" + question
	if historyBlock != "" {
		content += "\n\nHistórico recente da conversa (somente contexto; não use como filtro SQL):\n" + historyBlock
	}
	if summaryContext != "" {
		if len(summaryContext) > 2000 {
			summaryContext = summaryContext[:2000]
		}
		content += "\n\nContexto de resumo de dados (apenas referência, não é para filtrar diretamente):\n" + summaryContext
	}
	return content
}
