package readstore

import (
	"context"

	"tourpay/internal/infra"
	sqlc "tourpay/internal/infra/sqlc/generated"
	"tourpay/internal/pkg/pgconv"
	"tourpay/internal/usecase/queries"
)

type TourViewQueries interface {
	GetTourByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Tours, error)
	ListTours(ctx context.Context, db sqlc.DBTX, arg sqlc.ListToursParams) ([]sqlc.Tours, error)
}

type TourReadStore struct {
	queries TourViewQueries
	db      sqlc.DBTX
}

func NewTourReadStore(queries TourViewQueries, db sqlc.DBTX) *TourReadStore {
	return &TourReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TourReadStore) FindByID(ctx context.Context, id int64) (*queries.TourView, error) {
	row, err := r.queries.GetTourByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tour not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tour by ID", err)
	}
	return rowToTourView(row), nil
}

func (r *TourReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.TourView, error) {
	rows, err := r.queries.ListTours(ctx, r.db, sqlc.ListToursParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tours", err)
	}

	result := make([]*queries.TourView, len(rows))
	for i, row := range rows {
		result[i] = rowToTourView(row)
	}
	return result, nil
}

func rowToTourView(row sqlc.Tours) *queries.TourView {
	return &queries.TourView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Location:    row.Location,
		Duration:    row.Duration,
		PriceUSD:    row.PriceUsd,
		PriceSOL:    row.PriceSol,
		PriceBTC:    pgconv.DecimalPtrFromNull(row.PriceBtc),
		PriceETH:    pgconv.DecimalPtrFromNull(row.PriceEth),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
