package converter

import (
	"tourpay/internal/domain/tour"
	sqlc "tourpay/internal/infra/sqlc/generated"
	"tourpay/internal/pkg/pgconv"
)

func TourFromRow(row sqlc.Tours) *tour.Tour {
	return tour.ReconstructTour(
		row.ID,
		row.Name,
		row.Location,
		row.PriceUsd,
		row.PriceSol,
		pgconv.DecimalPtrFromNull(row.PriceBtc),
		pgconv.DecimalPtrFromNull(row.PriceEth),
	)
}
