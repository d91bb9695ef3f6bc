package readstore

import (
	"context"

	"surplusfood-api/internal/infra"
	"surplusfood-api/internal/infra/db"
	"surplusfood-api/internal/pkg/pgconv"
	"surplusfood-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const selectUserViewSQL = `
SELECT id, member_number, name, email, role, study_city, no_show_count, password_hash
FROM users`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	return r.findOne(ctx, selectUserViewSQL+` WHERE id = $1`, id)
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error) {
	return r.findOne(ctx, selectUserViewSQL+` WHERE email = $1`, email)
}

func (r *UserReadStore) findOne(ctx context.Context, query string, arg any) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&view.ID, &view.MemberNumber, &view.Name, &view.Email, &view.Role,
		&view.StudyCity, &view.NoShowCount, &view.PasswordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}
