package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jLucasZ1/contele-app/pkg/config"
	"github.com/jLucasZ1/contele-app/pkg/llm"
	"github.com/jLucasZ1/contele-app/pkg/models"
	"github.com/jLucasZ1/contele-app/pkg/prompts"
	"github.com/jLucasZ1/contele-app/pkg/schema"
	sqlguard "github.com/jLucasZ1/contele-app/pkg/sql"
)

// casualTemperature keeps small talk loose.
const casualTemperature = 0.9

// Agent is the question-answering pipeline. One Answer call processes one
// question end to end; sessions serialize their own requests, so the agent
// holds no per-request mutable state.
type Agent struct {
	cfg         *config.Config
	client      llm.Client
	catalog     *schema.Catalog
	validator   *sqlguard.Validator
	generator   *Generator
	executor    *Executor
	interpreter *Interpreter
	now         func() time.Time
	logger      *zap.Logger
}

// New wires the pipeline. now is injectable for tests; nil means time.Now.
func New(cfg *config.Config, client llm.Client, store Store, catalog *schema.Catalog, now func() time.Time, logger *zap.Logger) *Agent {
	if now == nil {
		now = time.Now
	}
	queryTimeout := time.Duration(cfg.Database.QueryTimeoutSec) * time.Second
	return &Agent{
		cfg:         cfg,
		client:      client,
		catalog:     catalog,
		validator:   sqlguard.NewValidator(catalog, now, logger),
		generator:   NewGenerator(client, catalog, &cfg.Persona, now, logger),
		executor:    NewExecutor(store, queryTimeout, logger),
		interpreter: NewInterpreter(client, &cfg.Persona, logger),
		now:         now,
		logger:      logger.Named("agent"),
	}
}

// Answer is the single entry point the hosting UI calls. Every failure
// path returns a short, prefixed, human-readable string that the UI can
// render directly as the assistant's reply; nothing panics across this
// boundary.
//
// summaryContext is an optional textual summary of the data currently on
// screen. filters carries the ambient dashboard selections. history is the
// session's conversation window, read for narrative coherence only.
func (a *Agent) Answer(ctx context.Context, question, summaryContext string, filters *models.FilterContext, history []models.Turn) string {
	if !a.cfg.Configured() {
		return "❌ Agente não configurado: defina DATABASE_URL e a chave da API de IA."
	}

	switch ClassifyIntent(question) {
	case IntentCasual:
		return a.casualReply(ctx, question, history)
	case IntentMeta:
		return prompts.MetaReply(&a.cfg.Persona)
	}

	historyBlock := prompts.FormatHistory(history, a.cfg.Persona.Name)
	filterGuidance := prompts.FilterGuidance(filters, a.now())

	rawSQL, err := a.generator.Generate(ctx, question, filterGuidance, historyBlock, summaryContext)
	if err != nil {
		return "❌ Não consegui montar uma consulta para essa pergunta. Tente reformular."
	}

	res := a.validator.Validate(rawSQL)
	if !res.OK {
		if isGenericRejection(res.Reason) {
			return res.Reason + "\n🔁 DICA: Especifique OS, período ou objetivo."
		}
		return res.Reason
	}

	result, err := a.executor.Execute(ctx, res.SQL)
	if err != nil {
		// Verbatim store error: a validated statement that fails points
		// at a validator/catalog gap worth exposing.
		return fmt.Sprintf("❌ Erro ao executar SQL: %v", err)
	}

	if len(result.Rows) == 0 {
		return fmt.Sprintf("❌ Nenhum resultado encontrado.\nQuery:\n```sql\n%s\n```", res.SQL)
	}

	analysis, err := a.interpreter.Interpret(ctx, question, res.SQL, result, historyBlock)
	if err != nil {
		return fmt.Sprintf(
			"😕 Consegui executar a consulta mas falhei ao redigir a análise.\n**📌 Query executada:**\n```sql\n%s\n```\n**📊 Linhas retornadas:** %d",
			res.SQL, len(result.Rows))
	}

	return fmt.Sprintf(
		"%s\n\n---\n**📌 Query executada:**\n```sql\n%s\n```\n**📊 Linhas retornadas:** %d",
		analysis, res.SQL, len(result.Rows))
}

// isGenericRejection reports whether a rejection reason is the
// too-generic-query case, which earns an extra narrowing hint.
func isGenericRejection(reason string) bool {
	return strings.Contains(reason, "genérica")
}

func (a *Agent) casualReply(ctx context.Context, question string, history []models.Turn) string {
	historyBlock := prompts.FormatHistory(history, a.cfg.Persona.Name)

	user := question
	if historyBlock != "" {
		user = "Histórico recente da conversa:\n" + historyBlock + "\n\nMensagem atual do usuário:\n" + question
	}

	reply, err := a.client.GenerateResponse(ctx, user, prompts.CasualSystem(&a.cfg.Persona), casualTemperature)
	if err != nil {
		a.logger.Error("casual reply failed", zap.Error(err))
		return fmt.Sprintf("❌ Erro: %v", err)
	}
	return reply
}

// CheckStore verifies store connectivity for startup health checks.
func (a *Agent) CheckStore(ctx context.Context) (bool, string) {
	if a.cfg.Database.URL == "" {
		return false, "❌ DATABASE_URL ausente"
	}
	if err := a.executor.store.Ping(ctx); err != nil {
		return false, fmt.Sprintf("❌ Banco falhou: %v", err)
	}
	return true, "✅ Banco OK"
}

// CheckLLM verifies completion-provider connectivity.
func (a *Agent) CheckLLM(ctx context.Context) (bool, string) {
	if a.cfg.LLM.Key() == "" {
		return false, "❌ Chave da API de IA não configurada"
	}
	if err := a.client.Ping(ctx); err != nil {
		return false, fmt.Sprintf("❌ IA falhou: %v", err)
	}
	return true, fmt.Sprintf("✅ %s disponível (%s)", a.cfg.Persona.Name, a.client.GetModel())
}

// SelfTest aggregates the connectivity checks plus the temporal context
// into a JSON report for the `teste` chat command.
func (a *Agent) SelfTest(ctx context.Context) string {
	_, llmMsg := a.CheckLLM(ctx)
	_, storeMsg := a.CheckStore(ctx)

	report, err := json.MarshalIndent(map[string]any{
		"ia":        llmMsg,
		"banco":     storeMsg,
		"ano_atual": a.now().Year(),
		"mes_atual": int(a.now().Month()),
	}, "", "  ")
	if err != nil {
		return fmt.Sprintf("erro ao montar relatório: %v", err)
	}
	return string(report)
}
