package repository

import (
	"context"

	"surplusfood-api/internal/domain/user"
	"surplusfood-api/internal/infra"
	"surplusfood-api/internal/infra/db"
	"surplusfood-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const insertUserSQL = `
INSERT INTO users (id, member_number, name, email, password_hash, role, birth_date, phone, study_city, no_show_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertUserSQL,
		u.ID(),
		u.MemberNumber().Value(),
		u.Name(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		pgconv.DateToPgtype(u.BirthDate()),
		u.Phone().Value(),
		u.StudyCity().String(),
		u.NoShowCount(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) IncrementNoShow(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx,
		`UPDATE users SET no_show_count = no_show_count + 1, updated_at = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment no-show count", err)
	}
	return tag.RowsAffected(), nil
}
