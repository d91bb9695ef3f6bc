package shared

import (
	"context"
	"time"

	"surplusfood-api/internal/domain/outlet"
	"surplusfood-api/internal/domain/pack"
	"surplusfood-api/internal/domain/product"
	"surplusfood-api/internal/domain/reservation"
	"surplusfood-api/internal/domain/user"
	"surplusfood-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Packages() PackageRepository
	Users() UserRepository
	Reservations() ReservationRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads loads fully materialized aggregates for command-side
// validation. Absence is reported as KindNotFound, never as a nil entity.
type CommandReads interface {
	PackageByID(ctx context.Context, id uuid.UUID) (*pack.Package, error)
	PackageWithDetails(ctx context.Context, id uuid.UUID) (*pack.Package, error)
	OutletByID(ctx context.Context, id uuid.UUID) (*outlet.Outlet, error)
	// ProductsByIDs resolves the ids it can find and silently drops the
	// rest; unknown product ids are not an error for package assembly.
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*product.Product, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	UserByMemberNumber(ctx context.Context, memberNumber string) (*user.User, error)
	HasReservationOnPickupDate(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error)
}

type PackageRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *pack.Package) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *pack.Package) error
	ReplaceProducts(ctx context.Context, tx db.DBTX, packageID uuid.UUID, productIDs []uuid.UUID) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// Reserve performs the conditional claim: it succeeds only when the
	// package is currently unreserved, otherwise reports KindConflict.
	Reserve(ctx context.Context, tx db.DBTX, packageID, userID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	// IncrementNoShow returns the number of affected rows; zero means the
	// user does not exist.
	IncrementNoShow(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *reservation.Reservation) (uuid.UUID, error)
}
