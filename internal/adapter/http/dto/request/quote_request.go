package request

import (
	"strings"

	"shootbook/internal/domain/entities"
)

type QuotePreviewRequest struct {
	Items      []SelectedServiceRequest `json:"items" binding:"required,min=1,dive"`
	ShootHours int                      `json:"shoot_hours"`
	EventType  string                   `json:"event_type"`
}

func (r QuotePreviewRequest) ToInput() entities.QuoteInput {
	items := make([]entities.SelectedService, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.SelectedService{ItemID: strings.TrimSpace(it.ItemID), Quantity: it.Quantity})
	}
	return entities.QuoteInput{
		Items:      items,
		ShootHours: r.ShootHours,
		EventType:  strings.TrimSpace(r.EventType),
	}
}
