package queries

import (
	"context"

	"github.com/google/uuid"
)

type OutletQueries interface {
	List(ctx context.Context) ([]*OutletView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OutletView, error)
	GetBySiteCode(ctx context.Context, siteCode string) (*OutletView, error)
}

type OutletViewRepo interface {
	FindAll(ctx context.Context) ([]*OutletView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OutletView, error)
	FindBySiteCode(ctx context.Context, siteCode string) (*OutletView, error)
}

type outletQueriesImpl struct {
	repo OutletViewRepo
}

func NewOutletQueries(repo OutletViewRepo) OutletQueries {
	return &outletQueriesImpl{repo: repo}
}

func (q *outletQueriesImpl) List(ctx context.Context) ([]*OutletView, error) {
	return q.repo.FindAll(ctx)
}

func (q *outletQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OutletView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *outletQueriesImpl) GetBySiteCode(ctx context.Context, siteCode string) (*OutletView, error) {
	return q.repo.FindBySiteCode(ctx, siteCode)
}
