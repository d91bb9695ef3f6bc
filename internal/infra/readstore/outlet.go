package readstore

import (
	"context"

	"surplusfood-api/internal/infra"
	"surplusfood-api/internal/infra/db"
	"surplusfood-api/internal/pkg/pgconv"
	"surplusfood-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OutletReadStore struct {
	db db.DBTX
}

func NewOutletReadStore(dbtx db.DBTX) *OutletReadStore {
	return &OutletReadStore{db: dbtx}
}

const selectOutletViewSQL = `
SELECT id, city, site_code, offers_hot_meals
FROM outlets`

func (r *OutletReadStore) FindAll(ctx context.Context) ([]*queries.OutletView, error) {
	rows, err := r.db.Query(ctx, selectOutletViewSQL+` ORDER BY city, site_code`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list outlets", err)
	}
	defer rows.Close()

	views := make([]*queries.OutletView, 0)
	for rows.Next() {
		var view queries.OutletView
		if err := rows.Scan(&view.ID, &view.City, &view.SiteCode, &view.OffersHotMeals); err != nil {
			return nil, infra.WrapRepoErr("failed to scan outlet row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate outlet rows", err)
	}
	return views, nil
}

func (r *OutletReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OutletView, error) {
	return r.findOne(ctx, selectOutletViewSQL+` WHERE id = $1`, id)
}

func (r *OutletReadStore) FindBySiteCode(ctx context.Context, siteCode string) (*queries.OutletView, error) {
	return r.findOne(ctx, selectOutletViewSQL+` WHERE site_code = $1`, siteCode)
}

func (r *OutletReadStore) findOne(ctx context.Context, query string, arg any) (*queries.OutletView, error) {
	var view queries.OutletView
	err := r.db.QueryRow(ctx, query, arg).Scan(&view.ID, &view.City, &view.SiteCode, &view.OffersHotMeals)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("outlet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find outlet", err)
	}
	return &view, nil
}
