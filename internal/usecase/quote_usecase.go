package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shootbook/internal/domain/entities"
	"shootbook/internal/usecase/interfaces"
)

var (
	ErrInvalidQuoteItems = errors.New("invalid quote items")
	ErrInvalidShootType  = errors.New("invalid shoot type")
)

// IQuoteUseCase prices a set of services outside any wizard session, e.g.
// for the creator search page.
type IQuoteUseCase interface {
	Preview(ctx context.Context, in entities.QuoteInput) (entities.CalculatedQuote, error)
}

type QuoteUseCase struct {
	gateway interfaces.IQuoteGateway
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(gateway interfaces.IQuoteGateway) *QuoteUseCase {
	return &QuoteUseCase{gateway: gateway}
}

func (u *QuoteUseCase) Preview(ctx context.Context, in entities.QuoteInput) (entities.CalculatedQuote, error) {
	if len(in.Items) == 0 {
		return entities.CalculatedQuote{}, ErrInvalidQuoteItems
	}
	for i, item := range in.Items {
		if strings.TrimSpace(item.ItemID) == "" || item.Quantity < 1 {
			return entities.CalculatedQuote{}, fmt.Errorf("%w: item %d", ErrInvalidQuoteItems, i)
		}
	}
	in.EventType = strings.TrimSpace(in.EventType)
	if in.EventType != "" && !entities.IsKnownShootType(in.EventType) {
		return entities.CalculatedQuote{}, ErrInvalidShootType
	}
	if in.ShootHours < 1 {
		in.ShootHours = 1
	}

	q, err := u.gateway.Calculate(ctx, in)
	if err != nil {
		return entities.CalculatedQuote{}, fmt.Errorf("%w: %w", ErrQuoteUnavailable, err)
	}
	return q, nil
}
