package payment

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItem is a single order line as received from the caller. Price is in
// major currency units (e.g. 9.99 USD).
type LineItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

type SessionRequest struct {
	Currency string     `json:"currency"`
	OrderID  string     `json:"orderId"`
	Items    []LineItem `json:"items"`
}

func (r SessionRequest) Validate() error {
	if r.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if r.OrderID == "" {
		return fmt.Errorf("orderId is required")
	}
	if len(r.Items) == 0 {
		return fmt.Errorf("items must not be empty")
	}
	for i, item := range r.Items {
		if item.Name == "" {
			return fmt.Errorf("items[%d].name is required", i)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("items[%d].price must not be negative", i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("items[%d].quantity must be at least 1", i)
		}
	}
	return nil
}

var oneHundred = decimal.NewFromInt(100)

// BuildLineItems converts major-unit prices to the integer minor-unit amounts
// the provider requires, rounding half away from zero at the cent boundary.
func BuildLineItems(items []LineItem) []SessionLineItem {
	out := make([]SessionLineItem, 0, len(items))
	for _, item := range items {
		out = append(out, SessionLineItem{
			Name:       item.Name,
			UnitAmount: item.Price.Mul(oneHundred).Round(0).IntPart(),
			Quantity:   item.Quantity,
		})
	}
	return out
}
