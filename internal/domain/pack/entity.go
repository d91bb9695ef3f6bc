package pack

import (
	"time"

	"surplusfood-api/internal/domain/outlet"
	"surplusfood-api/internal/domain/product"

	"github.com/google/uuid"
)

// Package is a reservable bundle of surplus products with a pickup window.
// The adult-only flag is derived from the product set and recomputed on every
// mutation of that set, never stored independently.
type Package struct {
	id             uuid.UUID
	name           Name
	city           outlet.City
	mealType       MealType
	outletID       uuid.UUID
	pickupTime     time.Time
	expirationTime time.Time
	price          Price
	adultOnly      bool
	reservedBy     *uuid.UUID
	products       []*product.Product
	createdAt      time.Time
	updatedAt      time.Time
}

// NewPackage builds a package from a validated draft. Callers must run
// ValidateDraft first; the constructor only assembles state.
func NewPackage(d Draft, products []*product.Product) *Package {
	p := &Package{
		id:             uuid.New(),
		name:           d.Name,
		city:           d.City,
		mealType:       d.MealType,
		outletID:       d.OutletID,
		pickupTime:     d.PickupTime,
		expirationTime: d.ExpirationTime,
		price:          d.Price,
		products:       products,
	}
	p.refreshAdultOnly()
	return p
}

func ReconstructPackage(
	id uuid.UUID,
	name Name,
	city outlet.City,
	mealType MealType,
	outletID uuid.UUID,
	pickupTime, expirationTime time.Time,
	price Price,
	adultOnly bool,
	reservedBy *uuid.UUID,
	products []*product.Product,
	createdAt, updatedAt time.Time,
) *Package {
	return &Package{
		id:             id,
		name:           name,
		city:           city,
		mealType:       mealType,
		outletID:       outletID,
		pickupTime:     pickupTime,
		expirationTime: expirationTime,
		price:          price,
		adultOnly:      adultOnly,
		reservedBy:     reservedBy,
		products:       products,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (p *Package) ID() uuid.UUID                { return p.id }
func (p *Package) Name() Name                   { return p.name }
func (p *Package) City() outlet.City            { return p.city }
func (p *Package) MealType() MealType           { return p.mealType }
func (p *Package) OutletID() uuid.UUID          { return p.outletID }
func (p *Package) PickupTime() time.Time        { return p.pickupTime }
func (p *Package) ExpirationTime() time.Time    { return p.expirationTime }
func (p *Package) Price() Price                 { return p.price }
func (p *Package) AdultOnly() bool              { return p.adultOnly }
func (p *Package) ReservedBy() *uuid.UUID       { return p.reservedBy }
func (p *Package) Products() []*product.Product { return p.products }
func (p *Package) CreatedAt() time.Time         { return p.createdAt }
func (p *Package) UpdatedAt() time.Time         { return p.updatedAt }

func (p *Package) IsReserved() bool {
	return p.reservedBy != nil
}

func (p *Package) IsReservedBy(userID uuid.UUID) bool {
	return p.reservedBy != nil && *p.reservedBy == userID
}

// IsAvailable reports whether the package can still be reserved:
// nobody holds it and the pickup window has not expired.
func (p *Package) IsAvailable(now time.Time) bool {
	return p.reservedBy == nil && p.expirationTime.After(now)
}

// ApplyDraft overwrites the mutable fields from a validated edit draft.
// Callers must run ValidateEdit first.
func (p *Package) ApplyDraft(d Draft) {
	p.name = d.Name
	p.city = d.City
	p.mealType = d.MealType
	p.outletID = d.OutletID
	p.pickupTime = d.PickupTime
	p.expirationTime = d.ExpirationTime
	p.price = d.Price
}

// ReplaceProducts swaps the whole product set and recomputes the
// adult-only flag from it.
func (p *Package) ReplaceProducts(products []*product.Product) {
	p.products = products
	p.refreshAdultOnly()
}

// Reserve marks the package as held by the given user. The persistence
// layer enforces the same transition with a conditional update; this keeps
// the in-memory aggregate consistent with it.
func (p *Package) Reserve(userID uuid.UUID) error {
	if p.reservedBy != nil {
		return ErrAlreadyReserved
	}
	id := userID
	p.reservedBy = &id
	return nil
}

func (p *Package) refreshAdultOnly() {
	p.adultOnly = false
	for _, prod := range p.products {
		if prod.ContainsAlcohol() {
			p.adultOnly = true
			return
		}
	}
}
