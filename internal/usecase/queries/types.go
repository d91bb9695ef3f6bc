package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type PackageView struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	City           string        `json:"city"`
	MealType       string        `json:"meal_type"`
	OutletID       uuid.UUID     `json:"outlet_id"`
	OutletSiteCode string        `json:"outlet_site_code"`
	PickupTime     time.Time     `json:"pickup_time"`
	ExpirationTime time.Time     `json:"expiration_time"`
	PriceCents     int32         `json:"price_cents"`
	AdultOnly      bool          `json:"adult_only"`
	ReservedBy     *uuid.UUID    `json:"reserved_by,omitempty"`
	Products       []ProductView `json:"products"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type PackageListItem struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	MealType       string    `json:"meal_type"`
	OutletID       uuid.UUID `json:"outlet_id"`
	OutletSiteCode string    `json:"outlet_site_code"`
	PickupTime     time.Time `json:"pickup_time"`
	ExpirationTime time.Time `json:"expiration_time"`
	PriceCents     int32     `json:"price_cents"`
	AdultOnly      bool      `json:"adult_only"`
}

type ProductView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	ContainsAlcohol bool      `json:"contains_alcohol"`
	PhotoURL        *string   `json:"photo_url,omitempty"`
}

type OutletView struct {
	ID             uuid.UUID `json:"id"`
	City           string    `json:"city"`
	SiteCode       string    `json:"site_code"`
	OffersHotMeals bool      `json:"offers_hot_meals"`
}

type AuthorizedUserView struct {
	ID           uuid.UUID `json:"id"`
	MemberNumber string    `json:"member_number"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	StudyCity    string    `json:"study_city"`
	NoShowCount  int32     `json:"no_show_count"`
	PasswordHash string    `json:"-"`
}

// AvailableFilter narrows the available-package listing. Both filters are
// independent ANDed predicates; nil means "no filter".
type AvailableFilter struct {
	City     *string
	MealType *string
}
