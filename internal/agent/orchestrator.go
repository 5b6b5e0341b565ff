package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/shopassist-poc/server/internal/agent/model"
	"github.com/shopassist-poc/server/internal/agent/prompts"
	"github.com/shopassist-poc/server/internal/agent/tools"
	errx "github.com/shopassist-poc/server/internal/core/error"
	"github.com/shopassist-poc/server/internal/retrieval"
	"github.com/shopassist-poc/server/internal/store"
	logx "github.com/shopassist-poc/server/pkg/logger"
)

// conversationState tracks where the order-status protocol currently is.
// Keeping the state explicit (rather than nested conditionals) lets tests
// target each transition independently.
type conversationState int

const (
	stateAwaitingToolDecision conversationState = iota // first model call pending or inspected
	stateToolRequested                                 // model issued tool-call requests
	stateToolExecuted                                  // every request has its result appended
	stateDone                                          // final text available
)

// Orchestrator drives one conversation with the generative service per
// request. The transcript is an owned value passed from step to step; nothing
// survives the request.
type Orchestrator struct {
	base         einomodel.BaseChatModel        // plain generation, no tool schema
	tooled       einomodel.ToolCallingChatModel // order lookup bound
	toolIndex    map[string]tool.InvokableTool
	prompt       model.PromptConfig
	maxToolCalls int
}

// NewOrchestrator binds the tool registry to the chat model and returns the
// orchestrator for all four resolution strategies.
func NewOrchestrator(
	ctx context.Context,
	chatModel einomodel.ToolCallingChatModel,
	ledger *store.Ledger,
	promptCfg model.PromptConfig,
	toolsCfg model.ToolsConfig,
) (*Orchestrator, error) {
	businessTools := tools.QueryTools(ledger)

	toolInfos, err := tools.ToolInfos(ctx, businessTools)
	if err != nil {
		logx.Error().Err(err).Msg("Failed to get tool infos")
		return nil, fmt.Errorf("failed to get tool infos: %w", err)
	}

	tooled, err := chatModel.WithTools(toolInfos)
	if err != nil {
		logx.Error().Err(err).Msg("Failed to bind tools to chat model")
		return nil, fmt.Errorf("failed to bind tools to chat model: %w", err)
	}

	index, err := tools.Index(ctx, businessTools)
	if err != nil {
		return nil, fmt.Errorf("failed to index tools: %w", err)
	}

	maxCalls := toolsCfg.MaxCalls
	if maxCalls <= 0 {
		maxCalls = 1
	}

	return &Orchestrator{
		base:         chatModel,
		tooled:       tooled,
		toolIndex:    index,
		prompt:       promptCfg,
		maxToolCalls: maxCalls,
	}, nil
}

// AnswerGeneral runs the bare generative path: one call, no augmentation.
func (o *Orchestrator) AnswerGeneral(ctx context.Context, query string) (string, error) {
	system, err := prompts.RenderGeneralSystem(ctx, o.prompt)
	if err != nil {
		return "", errx.New(err, 500, errx.SystemErrorMessage)
	}

	transcript := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(query),
	}

	out, err := o.base.Generate(ctx, transcript)
	if err != nil {
		return "", errx.WrapUpstream(err)
	}
	return finalText(out)
}

// AnswerProduct runs the RAG path: the retrieved records become the factual
// context of a single augmented generative call. An empty retrieval switches
// to the no-context fallback prompt rather than failing.
func (o *Orchestrator) AnswerProduct(ctx context.Context, query string, retrieved []store.Product) (string, error) {
	contextBlock := retrieval.ContextBlock(retrieved, o.prompt.ContextTopN)
	logx.Debug().Int("retrieved", len(retrieved)).Msg("Building product answer")

	system, err := prompts.RenderProductSystem(ctx, o.prompt, contextBlock)
	if err != nil {
		return "", errx.New(err, 500, errx.SystemErrorMessage)
	}

	transcript := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(query),
	}

	out, err := o.base.Generate(ctx, transcript)
	if err != nil {
		return "", errx.WrapUpstream(err)
	}
	return finalText(out)
}

// AnswerOrder runs the tool-calling protocol. The first call carries the tool
// schema; if the model requests the order lookup, the orchestrator executes
// it locally, appends the request/result pair to the transcript, and asks the
// model to finish. Every tool-call request receives exactly one result before
// the next generative call, and no call happens without a fresh request
// justifying it.
func (o *Orchestrator) AnswerOrder(ctx context.Context, query string) (string, error) {
	system, err := prompts.RenderOrderSystem(ctx, o.prompt)
	if err != nil {
		return "", errx.New(err, 500, errx.SystemErrorMessage)
	}

	transcript := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(query),
	}

	state := stateAwaitingToolDecision
	rounds := 0
	idSeq := 0
	var out *schema.Message

	for state != stateDone {
		switch state {
		case stateAwaitingToolDecision:
			// Only the first call advertises the tool schema; follow-up calls
			// continue an already satisfied tool conversation.
			m := o.base
			if rounds == 0 {
				m = o.tooled
			}
			out, err = m.Generate(ctx, transcript)
			if err != nil {
				return "", errx.WrapUpstream(err)
			}
			if len(out.ToolCalls) == 0 {
				// The model decided no lookup was needed (or has finished).
				state = stateDone
				break
			}
			if rounds >= o.maxToolCalls {
				logx.Warn().Int("rounds", rounds).Msg("Tool call limit reached, asking model to wrap up")
				transcript = append(transcript, out)
				transcript = appendWrapUpNotice(transcript, o.maxToolCalls)
				out, err = o.base.Generate(ctx, transcript)
				if err != nil {
					return "", errx.WrapUpstream(err)
				}
				state = stateDone
				break
			}
			state = stateToolRequested

		case stateToolRequested:
			// Providers occasionally omit tool-call IDs; synthesize them so
			// each result can reference its request.
			for i := range out.ToolCalls {
				if strings.TrimSpace(out.ToolCalls[i].ID) == "" {
					idSeq++
					out.ToolCalls[i].ID = fmt.Sprintf("call_%d", idSeq)
				}
			}
			transcript = append(transcript, out)

			for _, tc := range out.ToolCalls {
				result, execErr := o.executeToolCall(ctx, tc)
				if execErr != nil {
					return "", execErr
				}
				transcript = append(transcript, schema.ToolMessage(result, tc.ID))
			}
			state = stateToolExecuted

		case stateToolExecuted:
			rounds++
			state = stateAwaitingToolDecision
		}
	}

	return finalText(out)
}

// executeToolCall validates and runs one requested local function. A request
// naming an unregistered function gets a structured fallback result so the
// conversation can continue; a missing required argument fails the request
// terminally, with no guessed identifier substituted.
func (o *Orchestrator) executeToolCall(ctx context.Context, tc schema.ToolCall) (string, error) {
	name := tc.Function.Name

	t, ok := o.toolIndex[name]
	if !ok {
		logx.Warn().
			Str("tool_name", name).
			Str("arguments", tc.Function.Arguments).
			Msg("Unknown or invalid tool call; returning fallback result")
		return fmt.Sprintf("{\"error\":\"unknown_tool\",\"name\":%q,\"note\":\"ignored\"}", name), nil
	}

	if name == tools.ToolGetOrderStatus {
		if err := requireOrderID(tc.Function.Arguments); err != nil {
			logx.Error().Err(err).Msg("Tool call missing required order_id")
			return "", errx.ToolArgumentMissing(name)
		}
	}

	result, err := t.InvokableRun(ctx, tc.Function.Arguments)
	if err != nil {
		return "", errx.New(err, 500, errx.SystemErrorMessage)
	}

	logx.Debug().Str("tool_name", name).Msg("Tool executed")
	return result, nil
}

// requireOrderID checks that the model supplied a usable order_id argument.
// The argument extracted by the model is the only identifier source; the raw
// user text is never re-parsed.
func requireOrderID(argumentsJSON string) error {
	var args struct {
		OrderID string `json:"order_id"`
	}
	if err := json.Unmarshal([]byte(argumentsJSON), &args); err != nil {
		return fmt.Errorf("unparsable tool arguments: %w", err)
	}
	if strings.TrimSpace(args.OrderID) == "" {
		return fmt.Errorf("order_id is empty")
	}
	return nil
}

// appendWrapUpNotice adds fabricated tool results for any pending calls plus
// a system notice, so the transcript stays well formed when the call limit
// runs out.
func appendWrapUpNotice(transcript []*schema.Message, maxCalls int) []*schema.Message {
	last := transcript[len(transcript)-1]
	for _, tc := range last.ToolCalls {
		transcript = append(transcript, schema.ToolMessage(
			"{\"error\":\"tool_call_limit_reached\"}", tc.ID,
		))
	}
	return append(transcript, schema.SystemMessage(fmt.Sprintf(
		"SYSTEM NOTICE: You have reached the maximum tool call limit (%d). "+
			"Please answer the customer using the information you have already gathered.",
		maxCalls,
	)))
}

// finalText extracts the answer text from the model's last message. An empty
// or missing completion counts as a malformed upstream response.
func finalText(out *schema.Message) (string, error) {
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", errx.WrapUpstream(fmt.Errorf("empty completion"))
	}
	return out.Content, nil
}
