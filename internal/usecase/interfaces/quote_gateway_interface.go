package interfaces

import (
	"context"
	"shootbook/internal/domain/entities"
)

// IQuoteGateway abstracts the external pricing service. Prices, discounts
// and margins are computed there.
type IQuoteGateway interface {
	Calculate(ctx context.Context, in entities.QuoteInput) (entities.CalculatedQuote, error)
	Save(ctx context.Context, in entities.QuoteInput) (entities.SavedQuote, error)
}
