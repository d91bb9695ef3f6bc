package repository

import (
	"context"

	"surplusfood-api/internal/domain/pack"
	"surplusfood-api/internal/infra"
	"surplusfood-api/internal/infra/db"
	"surplusfood-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PackageRepository struct{}

func NewPackageRepository() *PackageRepository {
	return &PackageRepository{}
}

const insertPackageSQL = `
INSERT INTO packages (id, name, city, meal_type, outlet_id, pickup_time, expiration_time, price_cents, adult_only, reserved_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

func (r *PackageRepository) Create(ctx context.Context, tx db.DBTX, p *pack.Package) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertPackageSQL,
		p.ID(),
		p.Name().String(),
		p.City().String(),
		p.MealType().String(),
		p.OutletID(),
		pgconv.TimeToPgtype(p.PickupTime()),
		pgconv.TimeToPgtype(p.ExpirationTime()),
		p.Price().Cents(),
		p.AdultOnly(),
		pgconv.UUIDPtrToPgtype(p.ReservedBy()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create package", err)
	}

	productIDs := make([]uuid.UUID, 0, len(p.Products()))
	for _, prod := range p.Products() {
		productIDs = append(productIDs, prod.ID())
	}
	if err := r.insertProducts(ctx, tx, id, productIDs); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

const updatePackageSQL = `
UPDATE packages
SET name = $2, city = $3, meal_type = $4, outlet_id = $5, pickup_time = $6,
    expiration_time = $7, price_cents = $8, adult_only = $9, updated_at = now()
WHERE id = $1 AND reserved_by IS NULL`

// Update rewrites an unreserved package. The reserved_by guard in the
// statement itself closes the window between the caller's pre-read and this
// write: a reservation landing in between makes the update match zero rows.
func (r *PackageRepository) Update(ctx context.Context, tx db.DBTX, p *pack.Package) error {
	tag, err := tx.Exec(ctx, updatePackageSQL,
		p.ID(),
		p.Name().String(),
		p.City().String(),
		p.MealType().String(),
		p.OutletID(),
		pgconv.TimeToPgtype(p.PickupTime()),
		pgconv.TimeToPgtype(p.ExpirationTime()),
		p.Price().Cents(),
		p.AdultOnly(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update package", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("package reserved or missing", nil, infra.KindConflict)
	}
	return nil
}

// ReplaceProducts swaps the whole association set: remove-all then add-new.
func (r *PackageRepository) ReplaceProducts(ctx context.Context, tx db.DBTX, packageID uuid.UUID, productIDs []uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM package_products WHERE package_id = $1`, packageID); err != nil {
		return infra.WrapRepoErr("failed to clear package products", err)
	}
	return r.insertProducts(ctx, tx, packageID, productIDs)
}

// Delete removes an unreserved package, with the same in-statement guard as
// Update.
func (r *PackageRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM packages WHERE id = $1 AND reserved_by IS NULL`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete package", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("package reserved or missing", nil, infra.KindConflict)
	}
	return nil
}

const reservePackageSQL = `
UPDATE packages
SET reserved_by = $2, updated_at = now()
WHERE id = $1 AND reserved_by IS NULL`

// Reserve claims the package only if nobody holds it yet. Two concurrent
// callers cannot both succeed: the conditional update serializes on the row.
func (r *PackageRepository) Reserve(ctx context.Context, tx db.DBTX, packageID, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, reservePackageSQL, packageID, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve package", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("package already reserved", nil, infra.KindConflict)
	}
	return nil
}

func (r *PackageRepository) insertProducts(ctx context.Context, tx db.DBTX, packageID uuid.UUID, productIDs []uuid.UUID) error {
	for _, productID := range productIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO package_products (package_id, product_id) VALUES ($1, $2)`,
			packageID, productID,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to attach product to package", err)
		}
	}
	return nil
}
