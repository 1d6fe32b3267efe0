package repository

import (
	"context"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/jackc/pgx/v5"
)

type FlightRepository interface {
	ListWithAirline(ctx context.Context) ([]domain.Flight, error)
}

type PGFlightRepository struct {
	db DBTX
}

func NewFlightRepository(db DBTX) FlightRepository {
	return &PGFlightRepository{db: db}
}

// ListWithAirline joins every flight with its airline. A flight whose airline row is
// missing is left out rather than returned half filled.
func (r *PGFlightRepository) ListWithAirline(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT f.id, f.airline_id, a.airline_name, f.departure_city
		FROM flights f
		JOIN airlines a ON a.id = f.airline_id
		ORDER BY f.id`)
	if err != nil {
		return nil, classify("list flights", err)
	}
	flights, err := collect(rows, func(row pgx.Row, f *domain.Flight) error {
		return row.Scan(&f.ID, &f.AirlineID, &f.AirlineName, &f.DepartureCity)
	})
	return flights, classify("list flights", err)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
