package readstore

import (
	"context"
	"time"

	"surplusfood-api/internal/domain/outlet"
	"surplusfood-api/internal/domain/pack"
	"surplusfood-api/internal/domain/product"
	"surplusfood-api/internal/domain/user"
	"surplusfood-api/internal/infra"
	"surplusfood-api/internal/infra/db"
	"surplusfood-api/internal/pkg/pgconv"
	"surplusfood-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads rehydrates full domain aggregates for command-side checks.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) shared.CommandReads {
	return &CommandReads{db: dbtx}
}

const selectPackageSQL = `
SELECT id, name, city, meal_type, outlet_id, pickup_time, expiration_time,
       price_cents, adult_only, reserved_by, created_at, updated_at
FROM packages
WHERE id = $1`

func (r *CommandReads) PackageByID(ctx context.Context, id uuid.UUID) (*pack.Package, error) {
	return r.loadPackage(ctx, id, false)
}

func (r *CommandReads) PackageWithDetails(ctx context.Context, id uuid.UUID) (*pack.Package, error) {
	return r.loadPackage(ctx, id, true)
}

func (r *CommandReads) loadPackage(ctx context.Context, id uuid.UUID, withProducts bool) (*pack.Package, error) {
	var (
		rowID          uuid.UUID
		name           string
		city           string
		mealType       string
		outletID       uuid.UUID
		pickupTime     pgtype.Timestamptz
		expirationTime pgtype.Timestamptz
		priceCents     int32
		adultOnly      bool
		reservedBy     pgtype.UUID
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, selectPackageSQL, id).Scan(
		&rowID, &name, &city, &mealType, &outletID, &pickupTime, &expirationTime,
		&priceCents, &adultOnly, &reservedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package by ID", err)
	}

	var products []*product.Product
	if withProducts {
		products, err = r.packageProducts(ctx, rowID)
		if err != nil {
			return nil, err
		}
	}

	return reconstructPackage(
		rowID, name, city, mealType, outletID,
		pickupTime, expirationTime, priceCents, adultOnly, reservedBy,
		products, createdAt, updatedAt,
	)
}

const selectPackageProductsSQL = `
SELECT p.id, p.name, p.contains_alcohol, p.photo_url, p.created_at
FROM products p
JOIN package_products pp ON pp.product_id = p.id
WHERE pp.package_id = $1
ORDER BY p.name`

func (r *CommandReads) packageProducts(ctx context.Context, packageID uuid.UUID) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx, selectPackageProductsSQL, packageID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load package products", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		prod, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, prod)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate package products", err)
	}
	return products, nil
}

const selectOutletSQL = `
SELECT id, city, site_code, offers_hot_meals, created_at, updated_at
FROM outlets
WHERE id = $1`

func (r *CommandReads) OutletByID(ctx context.Context, id uuid.UUID) (*outlet.Outlet, error) {
	var (
		rowID          uuid.UUID
		city           string
		siteCode       string
		offersHotMeals bool
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, selectOutletSQL, id).Scan(
		&rowID, &city, &siteCode, &offersHotMeals, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("outlet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find outlet by ID", err)
	}

	cityVO, err := outlet.NewCity(city)
	if err != nil {
		return nil, infra.WrapRepoErr("stored outlet city is invalid", err)
	}
	siteVO, err := outlet.NewSiteCode(siteCode)
	if err != nil {
		return nil, infra.WrapRepoErr("stored outlet site code is invalid", err)
	}

	return outlet.ReconstructOutlet(
		rowID, cityVO, siteVO, offersHotMeals,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const selectProductsByIDsSQL = `
SELECT id, name, contains_alcohol, photo_url, created_at
FROM products
WHERE id = ANY($1)`

// ProductsByIDs resolves the ids that exist and silently drops the rest.
func (r *CommandReads) ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, selectProductsByIDsSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load products", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		prod, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, prod)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate products", err)
	}
	return products, nil
}

const selectUserSQL = `
SELECT id, member_number, name, email, password_hash, role, birth_date, phone,
       study_city, no_show_count, created_at, updated_at
FROM users`

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.loadUser(ctx, selectUserSQL+` WHERE id = $1`, id)
}

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.loadUser(ctx, selectUserSQL+` WHERE email = $1`, email)
}

func (r *CommandReads) UserByMemberNumber(ctx context.Context, memberNumber string) (*user.User, error) {
	return r.loadUser(ctx, selectUserSQL+` WHERE member_number = $1`, memberNumber)
}

func (r *CommandReads) loadUser(ctx context.Context, query string, arg any) (*user.User, error) {
	var (
		rowID        uuid.UUID
		memberNumber string
		name         string
		email        string
		passwordHash string
		role         string
		birthDate    pgtype.Date
		phone        string
		studyCity    string
		noShowCount  int32
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&rowID, &memberNumber, &name, &email, &passwordHash, &role, &birthDate,
		&phone, &studyCity, &noShowCount, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	return reconstructUser(
		rowID, memberNumber, name, email, passwordHash, role,
		birthDate, phone, studyCity, noShowCount, createdAt, updatedAt,
	)
}

const hasReservationOnDateSQL = `
SELECT EXISTS (
	SELECT 1
	FROM reservations r
	JOIN packages p ON p.id = r.package_id
	WHERE r.user_id = $1 AND p.pickup_time::date = $2::date
)`

// HasReservationOnPickupDate compares pickup dates at calendar-day
// granularity, ignoring the time of day.
func (r *CommandReads) HasReservationOnPickupDate(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, hasReservationOnDateSQL, userID, pgconv.DateToPgtype(date)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservations on pickup date", err)
	}
	return exists, nil
}
