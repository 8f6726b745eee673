package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jLucasZ1/contele-app/pkg/apperrors"
	"github.com/jLucasZ1/contele-app/pkg/config"
	"github.com/jLucasZ1/contele-app/pkg/llm"
	"github.com/jLucasZ1/contele-app/pkg/prompts"
	"github.com/jLucasZ1/contele-app/pkg/retry"
	"github.com/jLucasZ1/contele-app/pkg/schema"
)

// generationTemperature keeps SQL output near-deterministic.
const generationTemperature = 0.1

// Generator turns a question plus guidance into one candidate SQL
// statement via the LLM, retrying transient transport failures.
type Generator struct {
	client   llm.Client
	catalog  *schema.Catalog
	persona  *config.PersonaConfig
	retryCfg *retry.Config
	now      func() time.Time
	logger   *zap.Logger
}

// NewGenerator creates a SQL generator. now is injectable for tests; nil
// means time.Now.
func NewGenerator(client llm.Client, catalog *schema.Catalog, persona *config.PersonaConfig, now func() time.Time, logger *zap.Logger) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{
		client:   client,
		catalog:  catalog,
		persona:  persona,
		retryCfg: retry.LLMConfig(),
		now:      now,
		logger:   logger.Named("generator"),
	}
}

// Generate produces the raw candidate SQL for a question. filterGuidance,
// historyBlock and summaryContext may be empty. Errors never escape the
// retry boundary unwrapped: after exhausting retries the returned error
// wraps apperrors.ErrGeneration so callers can short-circuit.
func (g *Generator) Generate(ctx context.Context, question, filterGuidance, historyBlock, summaryContext string) (string, error) {
	system := prompts.GeneratorSystem(g.persona, g.catalog, filterGuidance, g.now())
	user := prompts.GeneratorUser(question, historyBlock, summaryContext)

	sqlText, err := retry.DoWithResult(ctx, g.retryCfg, func() (string, error) {
		return g.client.GenerateResponse(ctx, user, system, generationTemperature)
	})
	if err != nil {
		g.logger.Error("sql generation exhausted retries",
			zap.String("question", question),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", apperrors.ErrGeneration, err)
	}

	sqlText = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(sqlText, "```sql", ""), "```", ""))
	if sqlText == "" {
		return "", fmt.Errorf("%w: empty completion", apperrors.ErrGeneration)
	}

	g.logger.Info("sql generated",
		zap.String("question", question),
		zap.String("sql_raw", sqlText))

	return sqlText, nil
}
