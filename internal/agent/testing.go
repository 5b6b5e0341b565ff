package agent

import (
	"context"
	"fmt"
	"sync"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// scriptedChatModel is a test double for the generative service. It replays
// scripted outputs in order and records the transcript of every Generate
// call so tests can assert call counts and transcript contents.
type scriptedChatModel struct {
	mu      sync.Mutex
	outputs []*schema.Message
	err     error

	calls      [][]*schema.Message
	boundTools []*schema.ToolInfo
}

var _ einomodel.ToolCallingChatModel = (*scriptedChatModel)(nil)

func newScriptedChatModel(outputs ...*schema.Message) *scriptedChatModel {
	return &scriptedChatModel{outputs: outputs}
}

func newFailingChatModel(err error) *scriptedChatModel {
	return &scriptedChatModel{err: err}
}

func (m *scriptedChatModel) Generate(_ context.Context, in []*schema.Message, _ ...einomodel.Option) (*schema.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	transcript := make([]*schema.Message, len(in))
	copy(transcript, in)
	m.calls = append(m.calls, transcript)

	if m.err != nil {
		return nil, m.err
	}
	if len(m.calls) > len(m.outputs) {
		return nil, fmt.Errorf("scripted model exhausted after %d outputs", len(m.outputs))
	}
	return m.outputs[len(m.calls)-1], nil
}

func (m *scriptedChatModel) Stream(ctx context.Context, in []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	out, err := m.Generate(ctx, in, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{out}), nil
}

func (m *scriptedChatModel) WithTools(tools []*schema.ToolInfo) (einomodel.ToolCallingChatModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.boundTools = tools
	return m, nil
}

func (m *scriptedChatModel) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *scriptedChatModel) call(i int) []*schema.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[i]
}

// toolCallMessage builds an assistant message requesting one tool call.
func toolCallMessage(id, name, argumentsJSON string) *schema.Message {
	return schema.AssistantMessage("", []schema.ToolCall{
		{
			ID: id,
			Function: schema.FunctionCall{
				Name:      name,
				Arguments: argumentsJSON,
			},
		},
	})
}
