package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ReviewRepository interface {
	List(ctx context.Context, kind domain.ReviewTargetKind) ([]domain.Review, error)
	Create(ctx context.Context, review *domain.Review) error
}

type PGReviewRepository struct {
	db DBTX
}

func NewReviewRepository(db DBTX) ReviewRepository {
	return &PGReviewRepository{db: db}
}

// List returns reviews about entities of kind, or every review when kind is empty.
func (r *PGReviewRepository) List(ctx context.Context, kind domain.ReviewTargetKind) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx, `SELECT review_id, name, rating, description, author, target_kind, target_id
		FROM (
			SELECT review_id, name, rating, description, author,
				CASE
					WHEN hotel_id IS NOT NULL THEN 'Hotel'
					WHEN flight_id IS NOT NULL THEN 'Flight'
					WHEN car_id IS NOT NULL THEN 'RentalCar'
					ELSE 'Activity'
				END AS target_kind,
				COALESCE(hotel_id, flight_id, car_id, activity_id) AS target_id
			FROM reviews
		) r
		WHERE $1::text = '' OR target_kind = $1::text
		ORDER BY review_id`, string(kind))
	if err != nil {
		return nil, classify("list reviews", err)
	}
	reviews, err := collect(rows, func(row pgx.Row, rv *domain.Review) error {
		return row.Scan(&rv.ReviewID, &rv.Name, &rv.Rating, &rv.Description, &rv.Author, &rv.Kind, &rv.ID)
	})
	return reviews, classify("list reviews", err)
}

// Create stores the review against its target. The target column is chosen by the
// target kind; a target row that does not exist is a dependency error.
func (r *PGReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	var hotelID, flightID, carID, activityID *int64
	switch rv.Kind {
	case domain.ReviewTargetHotel:
		hotelID = &rv.ID
	case domain.ReviewTargetFlight:
		flightID = &rv.ID
	case domain.ReviewTargetRentalCar:
		carID = &rv.ID
	case domain.ReviewTargetActivity:
		activityID = &rv.ID
	default:
		return domain.Validationf("unknown review target type %q", rv.Kind)
	}

	err := r.db.QueryRow(ctx, `INSERT INTO reviews (name, rating, description, author, hotel_id, flight_id, car_id, activity_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING review_id`, rv.Name, rv.Rating, rv.Description, rv.Author, hotelID, flightID, carID, activityID).
		Scan(&rv.ReviewID)
	if err == nil {
		return nil
	}
	err = classify("create review", err)
	if domain.IsKind(err, domain.ErrorKindDependency) {
		return domain.NewError(domain.ErrorKindDependency, fmt.Sprintf("reviewed %s %d does not exist", rv.Kind, rv.ID), err)
	}
	return err
}

var _ ReviewRepository = (*PGReviewRepository)(nil)
