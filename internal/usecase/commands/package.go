package commands

import (
	"context"
	"log/slog"

	"surplusfood-api/internal/domain/outlet"
	"surplusfood-api/internal/domain/pack"
	"surplusfood-api/internal/domain/product"
	"surplusfood-api/internal/domain/reservation"
	"surplusfood-api/internal/infra"
	"surplusfood-api/internal/pkg/clock"
	"surplusfood-api/internal/pkg/errs"
	"surplusfood-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPackageNotFound         = errs.New("package not found")
	ErrOutletNotFound          = errs.New("outlet not found")
	ErrUserNotFound            = errs.New("user not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// PackageDraft is the command-side shape of a package create or edit.
// Fields arrive as raw strings and are lifted into value objects here, so
// handlers stay free of domain imports.
type PackageDraft struct {
	Name           string
	City           string
	MealType       string
	OutletID       uuid.UUID
	PickupTime     string
	ExpirationTime string
	PriceCents     int32
	ProductIDs     []uuid.UUID
}

type PackageCommands interface {
	CreatePackage(ctx context.Context, draft PackageDraft) (uuid.UUID, error)
	UpdatePackage(ctx context.Context, id uuid.UUID, draft PackageDraft) error
	DeletePackage(ctx context.Context, id uuid.UUID) error
	ReservePackage(ctx context.Context, packageID, userID uuid.UUID) (uuid.UUID, error)
}

type packageUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPackageUseCase(uow shared.UnitOfWork, clock clock.Clock) PackageCommands {
	return &packageUseCaseImpl{uow: uow, clock: clock}
}

func (p *packageUseCaseImpl) CreatePackage(ctx context.Context, draft PackageDraft) (uuid.UUID, error) {
	now := p.clock.Now()
	reads := p.uow.CommandReads()

	d, err := liftDraft(draft)
	if err != nil {
		return uuid.Nil, err
	}

	// Temporal rules come before the outlet is resolved: a bad pickup
	// time on an unknown outlet still reports the pickup time.
	if err := pack.ValidateDraftTiming(d, now); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	o, err := reads.OutletByID(ctx, draft.OutletID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrOutletNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := pack.ValidateDraftOutlet(d, o); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	products, err := p.resolveProducts(ctx, reads, draft.ProductIDs)
	if err != nil {
		return uuid.Nil, err
	}

	pkg := pack.NewPackage(d, products)

	var id uuid.UUID
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, err := tx.Packages().Create(ctx, tx.DB(), pkg)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("package created", "package_id", id, "outlet_id", draft.OutletID, "pickup_time", d.PickupTime)
	return id, nil
}

func (p *packageUseCaseImpl) UpdatePackage(ctx context.Context, id uuid.UUID, draft PackageDraft) error {
	now := p.clock.Now()
	reads := p.uow.CommandReads()

	d, err := liftDraft(draft)
	if err != nil {
		return err
	}

	existing, err := reads.PackageByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrPackageNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := pack.ValidateEditTiming(existing, d, now); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	o, err := reads.OutletByID(ctx, draft.OutletID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrOutletNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := pack.ValidateDraftOutlet(d, o); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	products, err := p.resolveProducts(ctx, reads, draft.ProductIDs)
	if err != nil {
		return err
	}

	existing.ApplyDraft(d)
	existing.ReplaceProducts(products)

	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Packages().Update(ctx, tx.DB(), existing); err != nil {
			// The write is guarded on reserved_by, so a reservation that
			// landed after the pre-read surfaces here as a conflict.
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(pack.ErrAlreadyReserved, ErrDomainValidation)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Packages().ReplaceProducts(ctx, tx.DB(), existing.ID(), productIDs(products)); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (p *packageUseCaseImpl) DeletePackage(ctx context.Context, id uuid.UUID) error {
	reads := p.uow.CommandReads()

	existing, err := reads.PackageByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrPackageNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := pack.ValidateDeletion(existing); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Packages().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(pack.ErrReservedNoDelete, ErrDomainValidation)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// ReservePackage validates eligibility, then claims the package with a
// conditional update so two concurrent requests cannot both win. The loser
// of the race sees the same reason as a request for an already reserved
// package.
func (p *packageUseCaseImpl) ReservePackage(ctx context.Context, packageID, userID uuid.UUID) (uuid.UUID, error) {
	now := p.clock.Now()
	reads := p.uow.CommandReads()

	pkg, err := reads.PackageWithDetails(ctx, packageID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrPackageNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u, err := reads.UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrUserNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	hasSameDay, err := reads.HasReservationOnPickupDate(ctx, userID, pkg.PickupTime())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := reservation.CheckRequest(u, pkg, hasSameDay, now); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	res := reservation.NewReservation(packageID, userID, now)

	var id uuid.UUID
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Packages().Reserve(ctx, tx.DB(), packageID, userID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(reservation.ErrPackageUnavailable, ErrDomainValidation)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		createdID, err := tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			// The unique constraint on package_id backstops the conditional claim.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(reservation.ErrPackageUnavailable, ErrDomainValidation)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("package reserved", "package_id", packageID, "user_id", userID, "reservation_id", id)
	return id, nil
}

func (p *packageUseCaseImpl) resolveProducts(ctx context.Context, reads shared.CommandReads, ids []uuid.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	products, err := reads.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return products, nil
}

func productIDs(products []*product.Product) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(products))
	for _, pr := range products {
		ids = append(ids, pr.ID())
	}
	return ids
}

// liftDraft converts the raw command input into domain value objects.
// Every conversion failure is a user-visible validation error.
func liftDraft(draft PackageDraft) (pack.Draft, error) {
	name, err := pack.NewName(draft.Name)
	if err != nil {
		return pack.Draft{}, errs.Mark(err, ErrDomainValidation)
	}
	city, err := outlet.NewCity(draft.City)
	if err != nil {
		return pack.Draft{}, errs.Mark(err, ErrDomainValidation)
	}
	mealType, err := pack.NewMealType(draft.MealType)
	if err != nil {
		return pack.Draft{}, errs.Mark(err, ErrDomainValidation)
	}
	price, err := pack.NewPrice(draft.PriceCents)
	if err != nil {
		return pack.Draft{}, errs.Mark(err, ErrDomainValidation)
	}
	pickup, err := parseDraftTime(draft.PickupTime)
	if err != nil {
		return pack.Draft{}, errs.Mark(err, ErrDomainValidation)
	}
	expiration, err := parseDraftTime(draft.ExpirationTime)
	if err != nil {
		return pack.Draft{}, errs.Mark(err, ErrDomainValidation)
	}

	return pack.Draft{
		Name:           name,
		City:           city,
		MealType:       mealType,
		OutletID:       draft.OutletID,
		PickupTime:     pickup,
		ExpirationTime: expiration,
		Price:          price,
	}, nil
}
