package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/jackc/pgx/v5"
)

type TravelerRepository interface {
	List(ctx context.Context) ([]domain.Traveler, error)
	GetByID(ctx context.Context, id string) (*domain.Traveler, error)
	Create(ctx context.Context, traveler *domain.Traveler) error
	Delete(ctx context.Context, id string) error
}

type PGTravelerRepository struct {
	db DBTX
}

func NewTravelerRepository(db DBTX) TravelerRepository {
	return &PGTravelerRepository{db: db}
}

const travelerColumns = `id, first_name, last_name, email, phone_number, created_at`

func (r *PGTravelerRepository) List(ctx context.Context) ([]domain.Traveler, error) {
	rows, err := r.db.Query(ctx, `SELECT `+travelerColumns+` FROM travelers ORDER BY created_at, id`)
	if err != nil {
		return nil, classify("list travelers", err)
	}
	travelers, err := collect(rows, scanTraveler)
	return travelers, classify("list travelers", err)
}

func (r *PGTravelerRepository) GetByID(ctx context.Context, id string) (*domain.Traveler, error) {
	var t domain.Traveler
	row := r.db.QueryRow(ctx, `SELECT `+travelerColumns+` FROM travelers WHERE id=$1`, id)
	if err := scanTraveler(row, &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("traveler %s not found", id)
		}
		return nil, classify("get traveler", err)
	}
	return &t, nil
}

func scanTraveler(row pgx.Row, t *domain.Traveler) error {
	return row.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.PhoneNumber, &t.CreatedAt)
}

// Create inserts the traveler. A duplicate id is reported as a conflict.
func (r *PGTravelerRepository) Create(ctx context.Context, t *domain.Traveler) error {
	err := r.db.QueryRow(ctx, `INSERT INTO travelers (id, first_name, last_name, email, phone_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`, t.ID, t.FirstName, t.LastName, t.Email, t.PhoneNumber).
		Scan(&t.CreatedAt)
	if err == nil {
		return nil
	}
	err = classify("create traveler", err)
	if domain.IsKind(err, domain.ErrorKindConflict) {
		return domain.NewError(domain.ErrorKindConflict, fmt.Sprintf("traveler %s already exists", t.ID), err)
	}
	return err
}

// Delete removes a traveler only when no other row references it. The reference
// check and the delete run as one statement.
func (r *PGTravelerRepository) Delete(ctx context.Context, id string) error {
	var found, referenced, deleted bool
	err := r.db.QueryRow(ctx, `
		WITH target AS (
			SELECT id FROM travelers WHERE id = $1
		), refs AS (
			SELECT EXISTS (SELECT 1 FROM reservations WHERE customer_id = $1)
				OR EXISTS (SELECT 1 FROM cancellations WHERE traveler_id = $1)
				OR EXISTS (SELECT 1 FROM support_tickets WHERE traveler_id = $1)
				OR EXISTS (SELECT 1 FROM notifications WHERE traveler_id = $1)
				OR EXISTS (SELECT 1 FROM traveler_activities WHERE traveler_id = $1) AS referenced
		), deleted AS (
			DELETE FROM travelers WHERE id = $1 AND NOT (SELECT referenced FROM refs) RETURNING id
		)
		SELECT EXISTS (SELECT 1 FROM target), (SELECT referenced FROM refs), EXISTS (SELECT 1 FROM deleted)`, id).
		Scan(&found, &referenced, &deleted)
	if err != nil {
		return classify("delete traveler", err)
	}
	switch {
	case !found:
		return domain.NotFoundf("traveler %s not found", id)
	case referenced || !deleted:
		return domain.Dependencyf("traveler %s is still referenced by other records", id)
	}
	return nil
}

var _ TravelerRepository = (*PGTravelerRepository)(nil)
