package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jLucasZ1/contele-app/pkg/apperrors"
	"github.com/jLucasZ1/contele-app/pkg/config"
	"github.com/jLucasZ1/contele-app/pkg/llm"
	"github.com/jLucasZ1/contele-app/pkg/models"
	"github.com/jLucasZ1/contele-app/pkg/prompts"
)

const (
	// interpretationTemperature allows some narrative freedom.
	interpretationTemperature = 0.6
	// previewRows bounds how many result rows the model sees; the total
	// row count travels separately.
	previewRows = 50
)

// structuredResult is the JSON payload handed to the narration model. The
// field split matters: total_linhas is a property of the query, the
// metrics map is the property of the domain.
type structuredResult struct {
	Colunas           []string           `json:"colunas"`
	TotalLinhas       int                `json:"total_linhas"`
	MetricasNumericas map[string]float64 `json:"metricas_numericas"`
	PreviewLinhas     []map[string]any   `json:"preview_linhas"`
}

// Interpreter narrates a structured query result back into natural
// language.
type Interpreter struct {
	client  llm.Client
	persona *config.PersonaConfig
	logger  *zap.Logger
}

// NewInterpreter creates a result interpreter.
func NewInterpreter(client llm.Client, persona *config.PersonaConfig, logger *zap.Logger) *Interpreter {
	return &Interpreter{
		client:  client,
		persona: persona,
		logger:  logger.Named("interpreter"),
	}
}

// Interpret turns the result of one executed statement into the narrative
// answer. historyBlock may be empty. On LLM failure the returned error
// wraps apperrors.ErrInterpretation; the caller falls back to mentioning
// the raw query and row count.
func (i *Interpreter) Interpret(ctx context.Context, question, sqlText string, result *models.QueryResult, historyBlock string) (string, error) {
	metrics := result.Metrics()

	preview := make([]map[string]any, 0, previewRows)
	for _, row := range result.Rows {
		if len(preview) == previewRows {
			break
		}
		entry := make(map[string]any, len(result.Columns))
		for idx, col := range result.Columns {
			if idx < len(row) {
				entry[col] = row[idx]
			}
		}
		preview = append(preview, entry)
	}

	payload, err := json.MarshalIndent(structuredResult{
		Colunas:           result.Columns,
		TotalLinhas:       len(result.Rows),
		MetricasNumericas: metrics,
		PreviewLinhas:     preview,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: marshal result: %v", apperrors.ErrInterpretation, err)
	}

	system := prompts.InterpreterSystem(i.persona)
	user := prompts.InterpreterUser(question, sqlText, string(payload), historyBlock)

	narrative, err := i.client.GenerateResponse(ctx, user, system, interpretationTemperature)
	if err != nil {
		i.logger.Error("interpretation failed",
			zap.String("question", question),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", apperrors.ErrInterpretation, err)
	}

	i.logger.Info("result interpreted",
		zap.String("question", question),
		zap.Int("rows", len(result.Rows)),
		zap.Any("metrics", metrics))

	return narrative, nil
}
