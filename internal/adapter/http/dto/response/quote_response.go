package response

import "shootbook/internal/domain/entities"

type QuotePreviewResponse struct {
	Quote entities.CalculatedQuote `json:"quote"`
}

func FromCalculatedQuote(q entities.CalculatedQuote) QuotePreviewResponse {
	if q.LineItems == nil {
		q.LineItems = []entities.QuoteLineItem{}
	}
	return QuotePreviewResponse{Quote: q}
}
