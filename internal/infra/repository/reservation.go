package repository

import (
	"context"

	"surplusfood-api/internal/domain/reservation"
	"surplusfood-api/internal/infra"
	"surplusfood-api/internal/infra/db"
	"surplusfood-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const insertReservationSQL = `
INSERT INTO reservations (id, package_id, user_id, picked_up, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertReservationSQL,
		res.ID(),
		res.PackageID(),
		res.UserID(),
		res.PickedUp(),
		pgconv.TimeToPgtype(res.CreatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}
