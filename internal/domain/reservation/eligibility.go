package reservation

import (
	"time"

	"surplusfood-api/internal/domain/pack"
	"surplusfood-api/internal/domain/user"
	"surplusfood-api/internal/pkg/errs"
)

// Stable, user-facing rejection reasons.
var (
	ErrPackageUnavailable = errs.New("package is already reserved")
	ErrPickupDateTaken    = errs.New("only one package can be reserved per pickup date")
	ErrAdultOnly          = errs.New("you must be 18 or older to reserve this package")
	ErrTooManyNoShows     = errs.New("too many no-shows to reserve a package")
)

// CheckRequest decides whether the user may reserve the package. Pure
// function over fully materialized entities; persistence concerns (the
// same-day history lookup) are supplied as an input.
//
// The check order is contractual: when several rules are violated at once
// the first one in this order is the reason the user sees.
//  1. availability (already reserved, or pickup window expired)
//  2. one package per pickup date
//  3. adult-only packages require age 18+ at the package's pickup time
//  4. standing: more than two no-shows blocks any reservation
func CheckRequest(u *user.User, p *pack.Package, hasSameDayReservation bool, now time.Time) error {
	if !p.IsAvailable(now) {
		return ErrPackageUnavailable
	}
	if hasSameDayReservation {
		return ErrPickupDateTaken
	}
	if p.AdultOnly() && !u.IsAdultAt(p.PickupTime()) {
		return ErrAdultOnly
	}
	if !u.CanReserve() {
		return ErrTooManyNoShows
	}
	return nil
}
