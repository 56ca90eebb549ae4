package entities

import "slices"

// QuoteLineItem is one priced row of a remote quote.
type QuoteLineItem struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Amount    float64 `json:"amount"`
}

// CalculatedQuote is the price breakdown returned by the pricing service.
// It is rendered as-is and never recomputed here.
type CalculatedQuote struct {
	LineItems       []QuoteLineItem `json:"line_items"`
	Subtotal        float64         `json:"subtotal"`
	DiscountPercent float64         `json:"discount_percent"`
	DiscountAmount  float64         `json:"discount_amount"`
	Margin          float64         `json:"margin"`
	Total           float64         `json:"total"`
}

func (q CalculatedQuote) Clone() CalculatedQuote {
	cp := q
	cp.LineItems = slices.Clone(q.LineItems)
	return cp
}

// QuoteInput is what the pricing service prices.
type QuoteInput struct {
	Items      []SelectedService
	ShootHours int
	EventType  string
	GuestEmail string
	Notes      string
}

// SavedQuote is a quote persisted by the pricing service.
type SavedQuote struct {
	QuoteID   string
	Total     float64
	Breakdown *CalculatedQuote
}
