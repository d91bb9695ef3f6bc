package response

import (
	"surplusfood-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OutletResponse struct {
	ID             uuid.UUID `json:"id"`
	City           string    `json:"city"`
	SiteCode       string    `json:"siteCode"`
	OffersHotMeals bool      `json:"offersHotMeals"`
}

func FromOutletView(rm *queries.OutletView) *OutletResponse {
	return &OutletResponse{
		ID:             rm.ID,
		City:           rm.City,
		SiteCode:       rm.SiteCode,
		OffersHotMeals: rm.OffersHotMeals,
	}
}
