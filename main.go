package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/shopassist-poc/server/internal/agent"
	"github.com/shopassist-poc/server/internal/agent/model"
	"github.com/shopassist-poc/server/internal/core"
	"github.com/shopassist-poc/server/internal/server"
	"github.com/shopassist-poc/server/internal/store"
	logx "github.com/shopassist-poc/server/pkg/logger"
)

// AppConfig defines all configurable parameters for the assistant, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	ListenAddr  string `envconfig:"LISTEN_ADDR" default:"127.0.0.1:8080"`

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Data sources. An empty products path uses the embedded catalog.
	ProductsPath string `envconfig:"PRODUCTS_PATH"`

	// Assistant configs
	Response model.ResponseModelConfig
	Prompt   model.PromptConfig
	Tools    model.ToolsConfig
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})

	catalog, err := store.LoadCatalog(cfg.ProductsPath)
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to load product catalog")
	}
	logx.Info().Int("products", catalog.Len()).Msg("Product catalog loaded")

	chatModel, err := agent.NewChatModel(ctx, agent.ChatModelConfig{
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Response: &cfg.Response,
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to create chat model")
	}

	engine, err := agent.NewEngine(ctx, agent.EngineConfig{
		FAQ:       store.DefaultFAQ(),
		Catalog:   catalog,
		Ledger:    store.DefaultLedger(),
		ChatModel: chatModel,
		Prompt:    cfg.Prompt,
		Tools:     cfg.Tools,
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to build engine")
	}

	srv := server.New(engine)
	if err := srv.Run(ctx, cfg.ListenAddr); err != nil {
		logx.Fatal().Err(err).Msg("HTTP server failed")
	}
}
