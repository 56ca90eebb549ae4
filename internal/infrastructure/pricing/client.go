package pricing

import (
	"context"
	"time"

	"go.uber.org/zap"

	"shootbook/internal/domain/entities"
	"shootbook/internal/infrastructure/remote"
	"shootbook/internal/usecase/interfaces"
)

// Client talks to the external pricing API. Prices, discounts and margins
// are computed there; responses are passed through untouched.
type Client struct {
	rest *remote.Client
}

var _ interfaces.IQuoteGateway = (*Client)(nil)

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{rest: remote.NewClient("pricing", baseURL, apiKey, timeout, logger)}
}

type itemPayload struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type calculateRequest struct {
	Items      []itemPayload `json:"items"`
	ShootHours int           `json:"shootHours"`
	EventType  string        `json:"eventType,omitempty"`
}

type saveRequest struct {
	Items      []itemPayload `json:"items"`
	ShootHours int           `json:"shootHours"`
	EventType  string        `json:"eventType,omitempty"`
	GuestEmail string        `json:"guestEmail"`
	Notes      string        `json:"notes,omitempty"`
}

type saveResponse struct {
	QuoteID   string                    `json:"quote_id"`
	Total     float64                   `json:"total"`
	Breakdown *entities.CalculatedQuote `json:"breakdown"`
}

func (c *Client) Calculate(ctx context.Context, in entities.QuoteInput) (entities.CalculatedQuote, error) {
	var out entities.CalculatedQuote
	err := c.rest.PostJSON(ctx, "/quotes/calculate", calculateRequest{
		Items:      toItems(in.Items),
		ShootHours: in.ShootHours,
		EventType:  in.EventType,
	}, &out)
	if err != nil {
		return entities.CalculatedQuote{}, err
	}
	return out, nil
}

func (c *Client) Save(ctx context.Context, in entities.QuoteInput) (entities.SavedQuote, error) {
	var out saveResponse
	err := c.rest.PostJSON(ctx, "/quotes", saveRequest{
		Items:      toItems(in.Items),
		ShootHours: in.ShootHours,
		EventType:  in.EventType,
		GuestEmail: in.GuestEmail,
		Notes:      in.Notes,
	}, &out)
	if err != nil {
		return entities.SavedQuote{}, err
	}

	total := out.Total
	if total == 0 && out.Breakdown != nil {
		total = out.Breakdown.Total
	}
	return entities.SavedQuote{QuoteID: out.QuoteID, Total: total, Breakdown: out.Breakdown}, nil
}

func toItems(services []entities.SelectedService) []itemPayload {
	items := make([]itemPayload, 0, len(services))
	for _, s := range services {
		items = append(items, itemPayload{ItemID: s.ItemID, Quantity: s.Quantity})
	}
	return items
}
