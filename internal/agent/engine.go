// Package agent contains the request engine and the conversation
// orchestrator: classification decides the resolution strategy, the
// orchestrator drives the generative service for the strategies that need
// it.
package agent

import (
	"context"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"

	"github.com/shopassist-poc/server/internal/agent/model"
	errx "github.com/shopassist-poc/server/internal/core/error"
	"github.com/shopassist-poc/server/internal/intent"
	"github.com/shopassist-poc/server/internal/retrieval"
	"github.com/shopassist-poc/server/internal/store"
	logx "github.com/shopassist-poc/server/pkg/logger"
)

// Engine is the boundary component: one query in, exactly one answer string
// or one error out. It owns no mutable state; every request gets its own
// transcript and the lookup stores are read-only.
type Engine struct {
	faq        *store.FAQ
	classifier *intent.Classifier
	retriever  *retrieval.Retriever
	orch       *Orchestrator
}

// EngineConfig wires the engine's collaborators together.
type EngineConfig struct {
	FAQ       *store.FAQ
	Catalog   *store.Catalog
	Ledger    *store.Ledger
	ChatModel einomodel.ToolCallingChatModel
	Prompt    model.PromptConfig
	Tools     model.ToolsConfig
}

// NewEngine builds the engine, binding the tool registry to the chat model.
func NewEngine(ctx context.Context, cfg EngineConfig) (*Engine, error) {
	orch, err := NewOrchestrator(ctx, cfg.ChatModel, cfg.Ledger, cfg.Prompt, cfg.Tools)
	if err != nil {
		return nil, err
	}

	return &Engine{
		faq:        cfg.FAQ,
		classifier: intent.NewClassifier(cfg.FAQ, cfg.Catalog),
		retriever:  retrieval.NewRetriever(cfg.Catalog),
		orch:       orch,
	}, nil
}

// Respond handles one query end to end. Empty input is rejected before any
// downstream component runs.
func (e *Engine) Respond(ctx context.Context, query string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", errx.InvalidInput()
	}

	resolved := e.classifier.Classify(q)
	logx.Debug().Str("intent", resolved.String()).Msg("Query classified")

	switch resolved {
	case intent.FAQ:
		if answer, ok := e.faq.Answer(q); ok {
			return answer, nil
		}
		// The FAQ rule only fires on exact matches, so this miss means the
		// table changed underneath us; treat it as general chat.
		logx.Warn().Msg("FAQ intent without a stored answer, falling back to general chat")
		return e.orch.AnswerGeneral(ctx, q)

	case intent.ProductInfo:
		return e.orch.AnswerProduct(ctx, q, e.retriever.Retrieve(q))

	case intent.OrderStatus:
		return e.orch.AnswerOrder(ctx, q)

	default:
		return e.orch.AnswerGeneral(ctx, q)
	}
}
