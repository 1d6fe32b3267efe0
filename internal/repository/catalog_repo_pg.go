package repository

import (
	"context"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ActivityRepository, RentalCarRepository and TravelAgentRepository cover the
// read-only reference tables that have no filters.
type ActivityRepository interface {
	List(ctx context.Context) ([]domain.Activity, error)
}

type RentalCarRepository interface {
	List(ctx context.Context) ([]domain.RentalCar, error)
}

type TravelAgentRepository interface {
	List(ctx context.Context) ([]domain.TravelAgent, error)
}

type PGActivityRepository struct {
	db DBTX
}

func NewActivityRepository(db DBTX) ActivityRepository {
	return &PGActivityRepository{db: db}
}

// List returns activities with the distinct cities they are offered in.
func (r *PGActivityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	rows, err := r.db.Query(ctx, `SELECT a.id, a.name, a.description,
			COALESCE(array_agg(DISTINCT l.city ORDER BY l.city) FILTER (WHERE l.city IS NOT NULL), '{}'::text[])
		FROM activities a
		LEFT JOIN traveler_activities ta ON ta.activity_id = a.id
		LEFT JOIN locations l ON l.location_id = ta.location_id
		GROUP BY a.id, a.name, a.description
		ORDER BY a.id`)
	if err != nil {
		return nil, classify("list activities", err)
	}
	activities, err := collect(rows, func(row pgx.Row, a *domain.Activity) error {
		return row.Scan(&a.ID, &a.Name, &a.Description, &a.Cities)
	})
	return activities, classify("list activities", err)
}

type PGRentalCarRepository struct {
	db DBTX
}

func NewRentalCarRepository(db DBTX) RentalCarRepository {
	return &PGRentalCarRepository{db: db}
}

func (r *PGRentalCarRepository) List(ctx context.Context) ([]domain.RentalCar, error) {
	rows, err := r.db.Query(ctx, `SELECT rc.car_id, c.car_model, c.car_type, rc.rental_price_per_day::float8
		FROM rental_cars rc
		JOIN cars c ON c.car_id = rc.car_id
		ORDER BY rc.car_id`)
	if err != nil {
		return nil, classify("list rental cars", err)
	}
	cars, err := collect(rows, func(row pgx.Row, c *domain.RentalCar) error {
		return row.Scan(&c.CarID, &c.CarModel, &c.CarType, &c.RentalPricePerDay)
	})
	return cars, classify("list rental cars", err)
}

type PGTravelAgentRepository struct {
	db DBTX
}

func NewTravelAgentRepository(db DBTX) TravelAgentRepository {
	return &PGTravelAgentRepository{db: db}
}

func (r *PGTravelAgentRepository) List(ctx context.Context) ([]domain.TravelAgent, error) {
	rows, err := r.db.Query(ctx, `SELECT id, agent_name, agency, email, phone_number FROM travel_agents ORDER BY id`)
	if err != nil {
		return nil, classify("list travel agents", err)
	}
	agents, err := collect(rows, func(row pgx.Row, a *domain.TravelAgent) error {
		return row.Scan(&a.ID, &a.AgentName, &a.Agency, &a.Email, &a.PhoneNumber)
	})
	return agents, classify("list travel agents", err)
}

var (
	_ ActivityRepository    = (*PGActivityRepository)(nil)
	_ RentalCarRepository   = (*PGRentalCarRepository)(nil)
	_ TravelAgentRepository = (*PGTravelAgentRepository)(nil)
)
