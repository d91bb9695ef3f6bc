package pack

import (
	"time"

	"surplusfood-api/internal/domain/outlet"
	"surplusfood-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// maxAdvanceDays is how far ahead a package may be offered.
const maxAdvanceDays = 2

// Stable, user-facing validation reasons. Callers display them as-is.
var (
	ErrPickupNotInFuture   = errs.New("pickup time must be in the future")
	ErrPickupTooFarAhead   = errs.New("packages can be offered at most 2 days in advance")
	ErrExpiresBeforePickup = errs.New("expiration time must be after pickup time")
	ErrHotMealsNotOffered  = errs.New("this outlet does not offer hot meals")
	ErrAlreadyReserved     = errs.New("a reserved package cannot be modified")
	ErrReservedNoDelete    = errs.New("a reserved package cannot be deleted")
)

// Draft carries the mutable fields of a package, already lifted into
// domain value objects by the caller.
type Draft struct {
	Name           Name
	City           outlet.City
	MealType       MealType
	OutletID       uuid.UUID
	PickupTime     time.Time
	ExpirationTime time.Time
	Price          Price
}

// ValidateDraftTiming runs the temporal rules of a creation draft. Check
// order is part of the contract: the first violated rule decides the
// reason the caller sees, and the temporal rules come before anything
// that needs the outlet resolved.
func ValidateDraftTiming(d Draft, now time.Time) error {
	if !d.PickupTime.After(now) {
		return ErrPickupNotInFuture
	}
	if d.PickupTime.After(now.AddDate(0, 0, maxAdvanceDays)) {
		return ErrPickupTooFarAhead
	}
	if !d.ExpirationTime.After(d.PickupTime) {
		return ErrExpiresBeforePickup
	}
	return nil
}

// ValidateDraftOutlet checks the draft against the outlet it targets.
func ValidateDraftOutlet(d Draft, o *outlet.Outlet) error {
	if d.MealType.RequiresHotMealService() && !o.OffersHotMeals() {
		return ErrHotMealsNotOffered
	}
	return nil
}

// ValidateDraft is the full creation check for callers that already hold
// the outlet.
func ValidateDraft(d Draft, o *outlet.Outlet, now time.Time) error {
	if err := ValidateDraftTiming(d, now); err != nil {
		return err
	}
	return ValidateDraftOutlet(d, o)
}

// ValidateEditTiming checks an edit draft against the existing record. A
// reserved package rejects every edit, before any other rule. The
// advance-window rule is applied at date granularity on edits: the
// proposed pickup date may be at most two days after today.
func ValidateEditTiming(existing *Package, d Draft, now time.Time) error {
	if existing.IsReserved() {
		return ErrAlreadyReserved
	}

	pickupDate := truncateToDate(d.PickupTime)
	maxDate := truncateToDate(now).AddDate(0, 0, maxAdvanceDays)
	if pickupDate.After(maxDate) {
		return ErrPickupTooFarAhead
	}

	if !d.ExpirationTime.After(d.PickupTime) {
		return ErrExpiresBeforePickup
	}
	return nil
}

// ValidateEdit is the full edit check for callers that already hold the
// outlet.
func ValidateEdit(existing *Package, d Draft, o *outlet.Outlet, now time.Time) error {
	if err := ValidateEditTiming(existing, d, now); err != nil {
		return err
	}
	return ValidateDraftOutlet(d, o)
}

// ValidateDeletion permits deletion only while nobody holds the package.
func ValidateDeletion(existing *Package) error {
	if existing.IsReserved() {
		return ErrReservedNoDelete
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
