package model

// ================ Config ================

// ResponseModelConfig configures the Gemini model producing customer-facing
// answers.
type ResponseModelConfig struct {
	Model       string  `envconfig:"RESPONSE_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"RESPONSE_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"RESPONSE_TEMPERATURE" default:"0.4"`
}

// PromptConfig carries the storefront identity rendered into every system
// prompt, plus the cap on retrieved records included in the RAG context.
type PromptConfig struct {
	BusinessType string `envconfig:"PROMPT_BUSINESS_TYPE" default:"online general store"`
	BusinessName string `envconfig:"PROMPT_BUSINESS_NAME" default:"ShopAssist"`
	ContextTopN  int    `envconfig:"PROMPT_CONTEXT_TOP_N" default:"2"`
}

// ToolsConfig bounds the tool-calling conversation. Each extra round trip
// must be justified by a fresh tool-call request from the model.
type ToolsConfig struct {
	MaxCalls int `envconfig:"TOOL_MAX_CALLS" default:"3"`
}
