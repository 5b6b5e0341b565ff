package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/shopassist-poc/server/internal/store"
)

// QueryTools returns the business tools available during a conversation.
func QueryTools(ledger *store.Ledger) []tool.BaseTool {
	return []tool.BaseTool{
		NewOrderStatusTool(ledger),
	}
}

// ToolInfos resolves the declarative schemas for a tool list, in order.
func ToolInfos(ctx context.Context, ts []tool.BaseTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(ts))
	for _, t := range ts {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("get tool info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Index maps tools by their registered names for dispatch of tool-call
// requests.
func Index(ctx context.Context, ts []tool.BaseTool) (map[string]tool.InvokableTool, error) {
	index := make(map[string]tool.InvokableTool, len(ts))
	for _, t := range ts {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("get tool info: %w", err)
		}
		inv, ok := t.(tool.InvokableTool)
		if !ok {
			return nil, fmt.Errorf("tool %s is not invokable", info.Name)
		}
		index[info.Name] = inv
	}
	return index, nil
}
