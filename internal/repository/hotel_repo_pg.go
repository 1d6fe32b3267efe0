package repository

import (
	"context"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/jackc/pgx/v5"
)

type HotelRepository interface {
	List(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error)
}

type PGHotelRepository struct {
	db DBTX
}

func NewHotelRepository(db DBTX) HotelRepository {
	return &PGHotelRepository{db: db}
}

// List returns hotels in filter.City (every city when empty) rated at least filter.MinRating.
func (r *PGHotelRepository) List(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error) {
	rows, err := r.db.Query(ctx, `SELECT hotel_id, hotel_name, city, average_rating::float8, check_in_time
		FROM hotels
		WHERE ($1::text = '' OR city = $1::text) AND average_rating::float8 >= $2::float8
		ORDER BY hotel_id`, filter.City, filter.MinRating)
	if err != nil {
		return nil, classify("list hotels", err)
	}
	hotels, err := collect(rows, func(row pgx.Row, h *domain.Hotel) error {
		return row.Scan(&h.HotelID, &h.HotelName, &h.City, &h.AverageRating, &h.CheckInTime)
	})
	return hotels, classify("list hotels", err)
}

var _ HotelRepository = (*PGHotelRepository)(nil)
