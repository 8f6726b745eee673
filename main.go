package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jLucasZ1/contele-app/pkg/agent"
	"github.com/jLucasZ1/contele-app/pkg/config"
	"github.com/jLucasZ1/contele-app/pkg/database"
	"github.com/jLucasZ1/contele-app/pkg/llm"
	"github.com/jLucasZ1/contele-app/pkg/logging"
	"github.com/jLucasZ1/contele-app/pkg/models"
	"github.com/jLucasZ1/contele-app/pkg/schema"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.Configured() {
		fmt.Println("❌ Configure DATABASE_URL e a chave da API de IA antes de iniciar.")
		os.Exit(1)
	}

	ctx := context.Background()

	catalog, err := schema.Load()
	if err != nil {
		logger.Fatal("load schema catalog", zap.Error(err))
	}

	client, err := llm.NewFromConfig(&cfg.LLM, logger)
	if err != nil {
		logger.Fatal("create llm client", zap.Error(err))
	}

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.URL,
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("connect to store",
			zap.String("url", logging.SanitizeConnectionString(cfg.Database.URL)),
			zap.Error(err))
	}
	defer db.Close()

	ag := agent.New(cfg, client, db, catalog, nil, logger)

	if ok, msg := ag.CheckLLM(ctx); !ok {
		fmt.Println(msg)
		os.Exit(1)
	}

	chat(ctx, ag, cfg, logger)
}

// chat runs the interactive session loop. Each question is processed end
// to end before the next is read; the session's history is only ever
// touched by this loop.
func chat(ctx context.Context, ag *agent.Agent, cfg *config.Config, logger *zap.Logger) {
	sessionID := uuid.New()
	logger.Info("chat session started", zap.String("session_id", sessionID.String()))

	divider := strings.Repeat("-", 70)
	fmt.Printf("\n💬 Chat com %s - %s (%s)\n", cfg.Persona.Name, cfg.Persona.Role, cfg.Persona.Company)
	fmt.Println("\nExemplos:")
	fmt.Println(" • Resumo da OS 5078")
	fmt.Println(" • Pendências abertas")
	fmt.Println(" • Ranking de vendedores por visitas")
	fmt.Println(" • Quantas OS por objetivo?")
	fmt.Println("\nDigite 'teste' para auto-diagnóstico, 'sair' para encerrar.")
	fmt.Println(divider)

	history := models.NewHistory(models.DefaultHistorySize)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("Você: ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(question) {
		case "":
			continue
		case "sair", "exit", "quit", "tchau":
			fmt.Printf("\n%s: Até logo! 👋\n", cfg.Persona.Name)
			return
		case "teste":
			fmt.Printf("\n%s\n%s\n", ag.SelfTest(ctx), divider)
			continue
		}

		history.Append(models.RoleUser, question)
		answer := ag.Answer(ctx, question, "", nil, history.Turns())
		history.Append(models.RoleAssistant, answer)

		fmt.Printf("\n%s:\n%s\n%s\n", cfg.Persona.Name, answer, divider)
	}
}
