package outlet

import (
	"time"

	"github.com/google/uuid"
)

// Outlet is a food-service location that publishes surplus packages.
// Outlet administration is handled elsewhere; the engine only reads it.
type Outlet struct {
	id             uuid.UUID
	city           City
	siteCode       SiteCode
	offersHotMeals bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewOutlet(city City, siteCode SiteCode, offersHotMeals bool) *Outlet {
	return &Outlet{
		id:             uuid.New(),
		city:           city,
		siteCode:       siteCode,
		offersHotMeals: offersHotMeals,
	}
}

func ReconstructOutlet(id uuid.UUID, city City, siteCode SiteCode, offersHotMeals bool, createdAt, updatedAt time.Time) *Outlet {
	return &Outlet{
		id:             id,
		city:           city,
		siteCode:       siteCode,
		offersHotMeals: offersHotMeals,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (o *Outlet) ID() uuid.UUID        { return o.id }
func (o *Outlet) City() City           { return o.city }
func (o *Outlet) SiteCode() SiteCode   { return o.siteCode }
func (o *Outlet) OffersHotMeals() bool { return o.offersHotMeals }
func (o *Outlet) CreatedAt() time.Time { return o.createdAt }
func (o *Outlet) UpdatedAt() time.Time { return o.updatedAt }
