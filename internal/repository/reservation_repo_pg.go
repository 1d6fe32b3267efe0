package repository

import (
	"context"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository interface {
	List(ctx context.Context, customerID string) ([]domain.Reservation, error)
}

type PGReservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) ReservationRepository {
	return &PGReservationRepository{db: db}
}

// List returns the reservations of customerID, or all reservations when it is empty.
func (r *PGReservationRepository) List(ctx context.Context, customerID string) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, `SELECT reservation_id, reservation_name, reservation_type, customer_id, hotel_id, flight_id, car_id
		FROM reservations
		WHERE $1::text = '' OR customer_id = $1::text
		ORDER BY reservation_id`, customerID)
	if err != nil {
		return nil, classify("list reservations", err)
	}
	reservations, err := collect(rows, func(row pgx.Row, res *domain.Reservation) error {
		return row.Scan(&res.ReservationID, &res.ReservationName, &res.ReservationType, &res.CustomerID, &res.HotelID, &res.FlightID, &res.CarID)
	})
	return reservations, classify("list reservations", err)
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
