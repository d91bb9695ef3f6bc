package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Reservation binds one user to one package. A package carries at most one
// reservation during its lifetime; the engine never releases it.
type Reservation struct {
	id        uuid.UUID
	packageID uuid.UUID
	userID    uuid.UUID
	pickedUp  bool
	createdAt time.Time
}

func NewReservation(packageID, userID uuid.UUID, now time.Time) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		packageID: packageID,
		userID:    userID,
		pickedUp:  false,
		createdAt: now,
	}
}

func ReconstructReservation(id, packageID, userID uuid.UUID, pickedUp bool, createdAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		packageID: packageID,
		userID:    userID,
		pickedUp:  pickedUp,
		createdAt: createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) PackageID() uuid.UUID { return r.packageID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) PickedUp() bool       { return r.pickedUp }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
