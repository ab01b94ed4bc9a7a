package queries

import (
	"context"

	"tourpay/internal/infra"
	"tourpay/internal/pkg/errs"
)

var ErrTourNotFound = errs.New("tour not found")

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type TourReadStore interface {
	FindByID(ctx context.Context, id int64) (*TourView, error)
	List(ctx context.Context, limit, offset int32) ([]*TourView, error)
}

type TourQueries interface {
	GetByID(ctx context.Context, id int64) (*TourView, error)
	List(ctx context.Context, limit, offset int) ([]*TourView, error)
}

type tourQueriesImpl struct {
	repo TourReadStore
}

func NewTourQueries(repo TourReadStore) TourQueries {
	return &tourQueriesImpl{repo: repo}
}

func (q *tourQueriesImpl) GetByID(ctx context.Context, id int64) (*TourView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrTourNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *tourQueriesImpl) List(ctx context.Context, limit, offset int) ([]*TourView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	// #nosec G115 -- bounded above
	return q.repo.List(ctx, int32(limit), int32(offset))
}
