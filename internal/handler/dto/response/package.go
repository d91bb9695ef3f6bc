package response

import (
	"time"

	"surplusfood-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PackageResponse struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	City           string            `json:"city"`
	MealType       string            `json:"mealType"`
	OutletID       uuid.UUID         `json:"outletId"`
	OutletSiteCode string            `json:"outletSiteCode"`
	PickupTime     time.Time         `json:"pickupTime"`
	ExpirationTime time.Time         `json:"expirationTime"`
	PriceCents     int32             `json:"priceCents"`
	AdultOnly      bool              `json:"adultOnly"`
	Reserved       bool              `json:"reserved"`
	Products       []ProductResponse `json:"products"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type PackageListResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	MealType       string    `json:"mealType"`
	OutletID       uuid.UUID `json:"outletId"`
	OutletSiteCode string    `json:"outletSiteCode"`
	PickupTime     time.Time `json:"pickupTime"`
	ExpirationTime time.Time `json:"expirationTime"`
	PriceCents     int32     `json:"priceCents"`
	AdultOnly      bool      `json:"adultOnly"`
}

type ProductResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	ContainsAlcohol bool      `json:"containsAlcohol"`
	PhotoURL        *string   `json:"photoUrl,omitempty"`
}

type ReservationResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	PackageID     uuid.UUID `json:"packageId"`
}

func FromPackageView(rm *queries.PackageView) *PackageResponse {
	products := make([]ProductResponse, len(rm.Products))
	for i, p := range rm.Products {
		products[i] = ProductResponse{
			ID:              p.ID,
			Name:            p.Name,
			ContainsAlcohol: p.ContainsAlcohol,
			PhotoURL:        p.PhotoURL,
		}
	}
	return &PackageResponse{
		ID:             rm.ID,
		Name:           rm.Name,
		City:           rm.City,
		MealType:       rm.MealType,
		OutletID:       rm.OutletID,
		OutletSiteCode: rm.OutletSiteCode,
		PickupTime:     rm.PickupTime,
		ExpirationTime: rm.ExpirationTime,
		PriceCents:     rm.PriceCents,
		AdultOnly:      rm.AdultOnly,
		Reserved:       rm.ReservedBy != nil,
		Products:       products,
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
}

func FromPackageListItem(rm *queries.PackageListItem) *PackageListResponse {
	return &PackageListResponse{
		ID:             rm.ID,
		Name:           rm.Name,
		City:           rm.City,
		MealType:       rm.MealType,
		OutletID:       rm.OutletID,
		OutletSiteCode: rm.OutletSiteCode,
		PickupTime:     rm.PickupTime,
		ExpirationTime: rm.ExpirationTime,
		PriceCents:     rm.PriceCents,
		AdultOnly:      rm.AdultOnly,
	}
}
