package queries

import (
	"context"

	"github.com/google/uuid"
)

type PackageQueries interface {
	// ListAvailable returns unreserved, unexpired packages ordered by
	// pickup time ascending, optionally narrowed by city and meal type.
	ListAvailable(ctx context.Context, filter AvailableFilter) ([]*PackageListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PackageView, error)
	ListByOutlet(ctx context.Context, outletID uuid.UUID) ([]*PackageListItem, error)
	ListReservedByUser(ctx context.Context, userID uuid.UUID) ([]*PackageListItem, error)
}

type PackageViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PackageView, error)
	FindAvailable(ctx context.Context, filter AvailableFilter) ([]*PackageListItem, error)
	FindByOutlet(ctx context.Context, outletID uuid.UUID) ([]*PackageListItem, error)
	FindReservedByUser(ctx context.Context, userID uuid.UUID) ([]*PackageListItem, error)
}

type packageQueriesImpl struct {
	repo PackageViewRepo
}

func NewPackageQueries(repo PackageViewRepo) PackageQueries {
	return &packageQueriesImpl{repo: repo}
}

func (q *packageQueriesImpl) ListAvailable(ctx context.Context, filter AvailableFilter) ([]*PackageListItem, error) {
	return q.repo.FindAvailable(ctx, filter)
}

func (q *packageQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PackageView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *packageQueriesImpl) ListByOutlet(ctx context.Context, outletID uuid.UUID) ([]*PackageListItem, error) {
	return q.repo.FindByOutlet(ctx, outletID)
}

func (q *packageQueriesImpl) ListReservedByUser(ctx context.Context, userID uuid.UUID) ([]*PackageListItem, error) {
	return q.repo.FindReservedByUser(ctx, userID)
}
