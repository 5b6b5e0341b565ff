package agent

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopassist-poc/server/internal/agent/model"
	"github.com/shopassist-poc/server/internal/agent/tools"
	errx "github.com/shopassist-poc/server/internal/core/error"
	"github.com/shopassist-poc/server/internal/store"
)

func newTestEngine(t *testing.T, m *scriptedChatModel) *Engine {
	t.Helper()
	engine, err := NewEngine(context.Background(), EngineConfig{
		FAQ:       store.DefaultFAQ(),
		Catalog:   store.DefaultCatalog(),
		Ledger:    store.DefaultLedger(),
		ChatModel: m,
		Prompt:    testPromptConfig(),
		Tools:     model.ToolsConfig{MaxCalls: 3},
	})
	require.NoError(t, err)
	return engine
}

func TestRespond_FAQVerbatimWithoutModelCalls(t *testing.T) {
	m := newScriptedChatModel()
	engine := newTestEngine(t, m)

	answer, err := engine.Respond(context.Background(), "How much is shipping?")
	require.NoError(t, err)
	assert.Equal(t, "Shipping is a flat rate of $5 nationwide, tax included.", answer)
	assert.Equal(t, 0, m.callCount())

	// Case-insensitive match returns the same stored answer.
	again, err := engine.Respond(context.Background(), "how much is shipping?")
	require.NoError(t, err)
	assert.Equal(t, answer, again)
	assert.Equal(t, 0, m.callCount())
}

func TestRespond_EmptyQueryRejectedBeforeAnything(t *testing.T) {
	m := newScriptedChatModel()
	engine := newTestEngine(t, m)

	for _, q := range []string{"", "   ", "\n\t"} {
		_, err := engine.Respond(context.Background(), q)
		require.Error(t, err, "query %q", q)
		assert.ErrorIs(t, err, errx.ErrInvalidInput)
	}
	assert.Equal(t, 0, m.callCount())
}

func TestRespond_ProductQueryAugmentsPrompt(t *testing.T) {
	m := newScriptedChatModel(schema.AssistantMessage("The Handy Mug is $15.", nil))
	engine := newTestEngine(t, m)

	answer, err := engine.Respond(context.Background(), "how much is the handy mug?")
	require.NoError(t, err)
	assert.Equal(t, "The Handy Mug is $15.", answer)
	require.Equal(t, 1, m.callCount())

	system := m.call(0)[0]
	assert.Contains(t, system.Content, "Easy-grip handle")
}

func TestRespond_NoProductMatchStillAnswers(t *testing.T) {
	m := newScriptedChatModel(schema.AssistantMessage("Sorry, nothing matched.", nil))
	engine := newTestEngine(t, m)

	answer, err := engine.Respond(context.Background(), "do you sell any products for dogs?")
	require.NoError(t, err)
	assert.NotEmpty(t, answer)
	require.Equal(t, 1, m.callCount())

	system := m.call(0)[0]
	assert.Contains(t, system.Content, "No product information")
}

func TestRespond_OrderRoundTripThroughEngine(t *testing.T) {
	m := newScriptedChatModel(
		toolCallMessage("call-1", tools.ToolGetOrderStatus, `{"order_id":"ORD123"}`),
		schema.AssistantMessage("Order ORD123 shipped on 2025-04-10.", nil),
	)
	engine := newTestEngine(t, m)

	answer, err := engine.Respond(context.Background(), "What's the status of order ORD123?")
	require.NoError(t, err)
	assert.Equal(t, "Order ORD123 shipped on 2025-04-10.", answer)
	require.Equal(t, 2, m.callCount())

	result := m.call(1)[3]
	assert.Equal(t, schema.Tool, result.Role)
	assert.Contains(t, result.Content, "shipped")
}

func TestRespond_GeneralChat(t *testing.T) {
	m := newScriptedChatModel(schema.AssistantMessage("Hello!", nil))
	engine := newTestEngine(t, m)

	answer, err := engine.Respond(context.Background(), "good morning")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", answer)
	assert.Equal(t, 1, m.callCount())
}

func TestRespond_UpstreamFailureSurfacesOnce(t *testing.T) {
	engine := newTestEngine(t, newFailingChatModel(assert.AnError))

	_, err := engine.Respond(context.Background(), "good morning")
	require.Error(t, err)
	assert.ErrorIs(t, err, errx.ErrUpstreamUnavailable)
}
