package response

import "shootbook/internal/domain/entities"

type CatalogResponse struct {
	ServiceTypes []string            `json:"service_types"`
	ContentTypes []string            `json:"content_types"`
	ShootTypes   []string            `json:"shoot_types"`
	EditTypes    map[string][]string `json:"edit_types"`
	Addons       []string            `json:"addons"`
	BudgetMin    float64             `json:"budget_min"`
	BudgetMax    float64             `json:"budget_max"`
}

func NewCatalogResponse() CatalogResponse {
	shoots := entities.ShootTypes()
	edits := make(map[string][]string, len(shoots))
	for _, s := range shoots {
		edits[s] = entities.EditTypesFor(s)
	}
	return CatalogResponse{
		ServiceTypes: []string{
			string(entities.ServiceTypeShootAndEdit),
			string(entities.ServiceTypeShootOnly),
			string(entities.ServiceTypeEditOnly),
		},
		ContentTypes: []string{
			string(entities.ContentTypeVideographer),
			string(entities.ContentTypePhotographer),
			string(entities.ContentTypeCinematographer),
			string(entities.ContentTypeAll),
		},
		ShootTypes: shoots,
		EditTypes:  edits,
		Addons:     entities.Addons(),
		BudgetMin:  entities.DefaultBudgetMin,
		BudgetMax:  entities.DefaultBudgetMax,
	}
}
