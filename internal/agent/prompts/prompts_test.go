package prompts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopassist-poc/server/internal/agent/model"
	"github.com/shopassist-poc/server/internal/agent/tools"
)

func promptCfg() model.PromptConfig {
	return model.PromptConfig{
		BusinessType: "online general store",
		BusinessName: "ShopAssist",
		ContextTopN:  2,
	}
}

func TestRenderProductSystem_WithContext(t *testing.T) {
	block := "Product: Handy Mug\nPrice: $15.00\nDescription: Easy-grip handle."

	out, err := RenderProductSystem(context.Background(), promptCfg(), block)
	require.NoError(t, err)
	assert.Contains(t, out, "ShopAssist")
	assert.Contains(t, out, "online general store")
	assert.Contains(t, out, block)
}

func TestRenderProductSystem_NoContextFallback(t *testing.T) {
	out, err := RenderProductSystem(context.Background(), promptCfg(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "ShopAssist")
	assert.Contains(t, out, "No product information")
	assert.NotContains(t, out, "# Related product information")
}

func TestRenderOrderSystem(t *testing.T) {
	out, err := RenderOrderSystem(context.Background(), promptCfg())
	require.NoError(t, err)
	assert.Contains(t, out, "ShopAssist")
	assert.Contains(t, out, tools.ToolGetOrderStatus)
}

func TestRenderGeneralSystem(t *testing.T) {
	out, err := RenderGeneralSystem(context.Background(), promptCfg())
	require.NoError(t, err)
	assert.Contains(t, out, "ShopAssist")
	assert.Contains(t, out, "online general store")
}
