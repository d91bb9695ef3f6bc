package readstore

import (
	"context"

	"surplusfood-api/internal/infra"
	"surplusfood-api/internal/infra/db"
	"surplusfood-api/internal/pkg/pgconv"
	"surplusfood-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PackageReadStore struct {
	db db.DBTX
}

func NewPackageReadStore(dbtx db.DBTX) *PackageReadStore {
	return &PackageReadStore{db: dbtx}
}

const selectPackageViewSQL = `
SELECT pk.id, pk.name, pk.city, pk.meal_type, pk.outlet_id, o.site_code,
       pk.pickup_time, pk.expiration_time, pk.price_cents, pk.adult_only,
       pk.reserved_by, pk.created_at, pk.updated_at
FROM packages pk
JOIN outlets o ON o.id = pk.outlet_id
WHERE pk.id = $1`

func (r *PackageReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PackageView, error) {
	var (
		view       queries.PackageView
		pickup     pgtype.Timestamptz
		expiration pgtype.Timestamptz
		reservedBy pgtype.UUID
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, selectPackageViewSQL, id).Scan(
		&view.ID, &view.Name, &view.City, &view.MealType, &view.OutletID, &view.OutletSiteCode,
		&pickup, &expiration, &view.PriceCents, &view.AdultOnly,
		&reservedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package by ID", err)
	}

	view.PickupTime = pgconv.TimeFromPgtype(pickup)
	view.ExpirationTime = pgconv.TimeFromPgtype(expiration)
	view.ReservedBy = pgconv.UUIDPtrFromPgtype(reservedBy)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	products, err := r.findProductViews(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Products = products

	return &view, nil
}

const selectAvailableSQL = `
SELECT pk.id, pk.name, pk.city, pk.meal_type, pk.outlet_id, o.site_code,
       pk.pickup_time, pk.expiration_time, pk.price_cents, pk.adult_only
FROM packages pk
JOIN outlets o ON o.id = pk.outlet_id
WHERE pk.reserved_by IS NULL
  AND pk.expiration_time > now()
  AND ($1::text IS NULL OR pk.city = $1)
  AND ($2::text IS NULL OR pk.meal_type = $2)
ORDER BY pk.pickup_time ASC`

func (r *PackageReadStore) FindAvailable(ctx context.Context, filter queries.AvailableFilter) ([]*queries.PackageListItem, error) {
	rows, err := r.db.Query(ctx, selectAvailableSQL,
		pgconv.StringPtrToPgtype(filter.City),
		pgconv.StringPtrToPgtype(filter.MealType),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available packages", err)
	}
	defer rows.Close()

	return scanPackageListItems(rows)
}

const selectByOutletSQL = `
SELECT pk.id, pk.name, pk.city, pk.meal_type, pk.outlet_id, o.site_code,
       pk.pickup_time, pk.expiration_time, pk.price_cents, pk.adult_only
FROM packages pk
JOIN outlets o ON o.id = pk.outlet_id
WHERE pk.outlet_id = $1
ORDER BY pk.pickup_time ASC`

func (r *PackageReadStore) FindByOutlet(ctx context.Context, outletID uuid.UUID) ([]*queries.PackageListItem, error) {
	rows, err := r.db.Query(ctx, selectByOutletSQL, outletID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find packages by outlet", err)
	}
	defer rows.Close()

	return scanPackageListItems(rows)
}

const selectReservedByUserSQL = `
SELECT pk.id, pk.name, pk.city, pk.meal_type, pk.outlet_id, o.site_code,
       pk.pickup_time, pk.expiration_time, pk.price_cents, pk.adult_only
FROM packages pk
JOIN outlets o ON o.id = pk.outlet_id
WHERE pk.reserved_by = $1
ORDER BY pk.pickup_time ASC`

func (r *PackageReadStore) FindReservedByUser(ctx context.Context, userID uuid.UUID) ([]*queries.PackageListItem, error) {
	rows, err := r.db.Query(ctx, selectReservedByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reserved packages", err)
	}
	defer rows.Close()

	return scanPackageListItems(rows)
}

func (r *PackageReadStore) findProductViews(ctx context.Context, packageID uuid.UUID) ([]queries.ProductView, error) {
	rows, err := r.db.Query(ctx, selectPackageProductsSQL, packageID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load package products", err)
	}
	defer rows.Close()

	views := make([]queries.ProductView, 0)
	for rows.Next() {
		var (
			view      queries.ProductView
			photoURL  pgtype.Text
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.ContainsAlcohol, &photoURL, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		view.PhotoURL = pgconv.StringPtrFromPgtype(photoURL)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return views, nil
}

func scanPackageListItems(rows pgx.Rows) ([]*queries.PackageListItem, error) {
	items := make([]*queries.PackageListItem, 0)
	for rows.Next() {
		var (
			item       queries.PackageListItem
			pickup     pgtype.Timestamptz
			expiration pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID, &item.Name, &item.City, &item.MealType, &item.OutletID, &item.OutletSiteCode,
			&pickup, &expiration, &item.PriceCents, &item.AdultOnly,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan package row", err)
		}
		item.PickupTime = pgconv.TimeFromPgtype(pickup)
		item.ExpirationTime = pgconv.TimeFromPgtype(expiration)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate package rows", err)
	}
	return items, nil
}
