// Package prompts renders the system prompts for each resolution strategy
// from embedded templates via the Eino prompt component.
package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/shopassist-poc/server/internal/agent/model"
	"github.com/shopassist-poc/server/internal/agent/tools"
)

//go:embed template/rag_prompt.txt
var ragSystemPrompt string

//go:embed template/no_context_prompt.txt
var noContextSystemPrompt string

//go:embed template/order_prompt.txt
var orderSystemPrompt string

//go:embed template/general_prompt.txt
var generalSystemPrompt string

// RenderProductSystem renders the system prompt for the RAG path. When
// contextBlock is empty it switches to the no-context fallback prompt, which
// forbids the model from fabricating product facts.
func RenderProductSystem(ctx context.Context, cfg model.PromptConfig, contextBlock string) (string, error) {
	if contextBlock == "" {
		return render(ctx, noContextSystemPrompt, map[string]any{
			"BusinessType": cfg.BusinessType,
			"BusinessName": cfg.BusinessName,
		})
	}
	return render(ctx, ragSystemPrompt, map[string]any{
		"BusinessType": cfg.BusinessType,
		"BusinessName": cfg.BusinessName,
		"Context":      contextBlock,
	})
}

// RenderOrderSystem renders the system prompt for the order-status path.
func RenderOrderSystem(ctx context.Context, cfg model.PromptConfig) (string, error) {
	return render(ctx, orderSystemPrompt, map[string]any{
		"BusinessType": cfg.BusinessType,
		"BusinessName": cfg.BusinessName,
		"OrderTool":    tools.ToolGetOrderStatus,
	})
}

// RenderGeneralSystem renders the system prompt for unaugmented general chat.
func RenderGeneralSystem(ctx context.Context, cfg model.PromptConfig) (string, error) {
	return render(ctx, generalSystemPrompt, map[string]any{
		"BusinessType": cfg.BusinessType,
		"BusinessName": cfg.BusinessName,
	})
}

// render formats one embedded template via the Eino prompt component
// (Go template syntax) and returns the resulting system prompt text.
func render(ctx context.Context, tplText string, vars map[string]any) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(tplText),
	)
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("system prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("system prompt render: empty result")
	}
	return msgs[0].Content, nil
}
