package request

import (
	"surplusfood-api/internal/usecase/commands"

	"github.com/google/uuid"
)

// PackageDraftRequest is shared by create and edit; both carry the full
// mutable field set.
type PackageDraftRequest struct {
	Name           string      `json:"name" binding:"required"`
	City           string      `json:"city" binding:"required"`
	MealType       string      `json:"meal_type" binding:"required"`
	OutletID       uuid.UUID   `json:"outlet_id" binding:"required"`
	PickupTime     string      `json:"pickup_time" binding:"required"`
	ExpirationTime string      `json:"expiration_time" binding:"required"`
	PriceCents     int32       `json:"price_cents" binding:"required"`
	ProductIDs     []uuid.UUID `json:"product_ids"`
}

func (r PackageDraftRequest) ToDraft() commands.PackageDraft {
	return commands.PackageDraft{
		Name:           r.Name,
		City:           r.City,
		MealType:       r.MealType,
		OutletID:       r.OutletID,
		PickupTime:     r.PickupTime,
		ExpirationTime: r.ExpirationTime,
		PriceCents:     r.PriceCents,
		ProductIDs:     r.ProductIDs,
	}
}
