//go:build unit || e2e

package builder

import (
	"time"

	"surplusfood-api/internal/domain/outlet"
	"surplusfood-api/internal/domain/pack"
	"surplusfood-api/internal/domain/product"

	"github.com/google/uuid"
)

type PackageBuilder struct {
	Name           string
	City           string
	MealType       string
	OutletID       uuid.UUID
	PickupTime     time.Time
	ExpirationTime time.Time
	PriceCents     int32
	Products       []*product.Product
	ReservedBy     *uuid.UUID
	Now            time.Time
}

func NewPackageBuilder() *PackageBuilder {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return &PackageBuilder{
		Name:           "Leftover lunch",
		City:           "breda",
		MealType:       "bread",
		OutletID:       uuid.New(),
		PickupTime:     now.Add(20 * time.Hour),
		ExpirationTime: now.Add(24 * time.Hour),
		PriceCents:     350,
		Now:            now,
	}
}

func (p *PackageBuilder) With(mutate func(*PackageBuilder)) *PackageBuilder {
	mutate(p)
	return p
}

func (p *PackageBuilder) WithMealType(mealType string) *PackageBuilder {
	p.MealType = mealType
	return p
}

func (p *PackageBuilder) WithPickup(pickup, expiration time.Time) *PackageBuilder {
	p.PickupTime = pickup
	p.ExpirationTime = expiration
	return p
}

func (p *PackageBuilder) WithProducts(products ...*product.Product) *PackageBuilder {
	p.Products = products
	return p
}

func (p *PackageBuilder) WithReservedBy(userID uuid.UUID) *PackageBuilder {
	p.ReservedBy = &userID
	return p
}

func (p *PackageBuilder) BuildDraft() (pack.Draft, error) {
	name, err := pack.NewName(p.Name)
	if err != nil {
		return pack.Draft{}, err
	}
	city, err := outlet.NewCity(p.City)
	if err != nil {
		return pack.Draft{}, err
	}
	mealType, err := pack.NewMealType(p.MealType)
	if err != nil {
		return pack.Draft{}, err
	}
	price, err := pack.NewPrice(p.PriceCents)
	if err != nil {
		return pack.Draft{}, err
	}
	return pack.Draft{
		Name:           name,
		City:           city,
		MealType:       mealType,
		OutletID:       p.OutletID,
		PickupTime:     p.PickupTime,
		ExpirationTime: p.ExpirationTime,
		Price:          price,
	}, nil
}

func (p *PackageBuilder) BuildDomain() (*pack.Package, error) {
	d, err := p.BuildDraft()
	if err != nil {
		return nil, err
	}
	pkg := pack.NewPackage(d, p.Products)
	if p.ReservedBy != nil {
		pkg = pack.ReconstructPackage(
			pkg.ID(), d.Name, d.City, d.MealType, d.OutletID,
			d.PickupTime, d.ExpirationTime, d.Price, pkg.AdultOnly(),
			p.ReservedBy, p.Products, p.Now, p.Now,
		)
	}
	return pkg, nil
}

type OutletBuilder struct {
	City           string
	SiteCode       string
	OffersHotMeals bool
}

func NewOutletBuilder() *OutletBuilder {
	return &OutletBuilder{
		City:           "breda",
		SiteCode:       "LA",
		OffersHotMeals: false,
	}
}

func (o *OutletBuilder) WithHotMeals() *OutletBuilder {
	o.OffersHotMeals = true
	return o
}

func (o *OutletBuilder) BuildDomain() (*outlet.Outlet, error) {
	city, err := outlet.NewCity(o.City)
	if err != nil {
		return nil, err
	}
	siteCode, err := outlet.NewSiteCode(o.SiteCode)
	if err != nil {
		return nil, err
	}
	return outlet.NewOutlet(city, siteCode, o.OffersHotMeals), nil
}

func NewTestProduct(name string, containsAlcohol bool) *product.Product {
	p, err := product.NewProduct(name, containsAlcohol, nil)
	if err != nil {
		panic(err)
	}
	return p
}
