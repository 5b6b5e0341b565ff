package store

import "strings"

// Order is one record in the dummy order ledger. The optional date fields
// carry the detail relevant to the order's current status.
type Order struct {
	OrderID           string `json:"order_id"`
	CustomerName      string `json:"customer_name,omitempty"`
	Status            string `json:"status"`
	ShippedDate       string `json:"shipped_date,omitempty"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
	DeliveredDate     string `json:"delivered_date,omitempty"`
}

// Ledger is the read-only order ledger, keyed by upper-cased order ID.
type Ledger struct {
	orders map[string]Order
}

// NewLedger builds a ledger from the given orders.
func NewLedger(orders []Order) *Ledger {
	m := make(map[string]Order, len(orders))
	for _, o := range orders {
		if o.OrderID == "" {
			continue
		}
		m[strings.ToUpper(o.OrderID)] = o
	}
	return &Ledger{orders: m}
}

// Get looks up an order by ID, ignoring case. A missing order is a normal
// domain outcome, not an error.
func (l *Ledger) Get(orderID string) (Order, bool) {
	if strings.TrimSpace(orderID) == "" {
		return Order{}, false
	}
	o, ok := l.orders[strings.ToUpper(strings.TrimSpace(orderID))]
	return o, ok
}

// DefaultLedger returns the built-in dummy order dataset.
func DefaultLedger() *Ledger {
	return NewLedger([]Order{
		{
			OrderID:      "ORD123",
			CustomerName: "Test Customer A",
			Status:       "shipped",
			ShippedDate:  "2025-04-10",
		},
		{
			OrderID:           "ORD456",
			CustomerName:      "Test Customer B",
			Status:            "processing",
			EstimatedDelivery: "2025-04-16",
		},
		{
			OrderID:       "XYZ789",
			CustomerName:  "Test Customer C",
			Status:        "delivered",
			DeliveredDate: "2025-04-12",
		},
	})
}
