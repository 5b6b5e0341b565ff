// Package tools declares the local functions the generative service may
// request during a conversation, in the declarative shape Gemini consumes.
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/shopassist-poc/server/internal/store"
)

// ToolGetOrderStatus is the registered name of the order lookup function.
const ToolGetOrderStatus = "get_order_status"

type OrderStatusInput struct {
	OrderID string `json:"order_id"`
}

type OrderStatusOutput struct {
	OrderID string `json:"order_id"`
	Found   bool   `json:"found"`
	Status  string `json:"status,omitempty"`
	Detail  string `json:"detail,omitempty"`
	Note    string `json:"note,omitempty"`
}

// NewOrderStatusTool builds the order lookup tool over the given ledger.
// A missing order is a normal domain result reported back to the model, not
// an execution error.
func NewOrderStatusTool(ledger *store.Ledger) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolGetOrderStatus,
			Desc: "Look up the current status of a customer order by its order number. Returns the status (for example shipped, processing, delivered) together with shipping or delivery detail when available. Use this whenever the customer asks about an order and provides an order number.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"order_id": {
					Type:     "string",
					Desc:     "The customer's order identifier exactly as they provided it, e.g. ORD123 or XYZ789.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *OrderStatusInput) (*OrderStatusOutput, error) {
			id := strings.TrimSpace(in.OrderID)
			if id == "" {
				return nil, fmt.Errorf("order_id is required")
			}

			order, ok := ledger.Get(id)
			if !ok {
				return &OrderStatusOutput{
					OrderID: strings.ToUpper(id),
					Found:   false,
					Note:    "no order with this identifier exists",
				}, nil
			}

			return &OrderStatusOutput{
				OrderID: order.OrderID,
				Found:   true,
				Status:  order.Status,
				Detail:  orderDetail(order),
			}, nil
		},
	)
}

// orderDetail picks the date detail relevant to the order's status.
func orderDetail(o store.Order) string {
	switch {
	case o.ShippedDate != "":
		return "shipped on " + o.ShippedDate
	case o.EstimatedDelivery != "":
		return "estimated delivery " + o.EstimatedDelivery
	case o.DeliveredDate != "":
		return "delivered on " + o.DeliveredDate
	}
	return ""
}
