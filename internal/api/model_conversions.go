package api

import (
	"legalai-backend/internal/database"
	"legalai-backend/pkg/api"
)

func convertInteraction(i database.Interaction) api.Interaction {
	return api.Interaction{
		Id:             i.Id,
		Kind:           i.Kind,
		InputText:      i.InputText,
		AIResponse:     i.AIResponse,
		SourceFileName: i.SourceFileName.String,
		CreatedAt:      i.CreatedAt,
	}
}

func convertInteractions(is []database.Interaction) []api.Interaction {
	interactions := make([]api.Interaction, 0, len(is))
	for _, i := range is {
		interactions = append(interactions, convertInteraction(i))
	}
	return interactions
}
