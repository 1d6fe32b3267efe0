package repository

import (
	"context"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/jackc/pgx/v5"
)

// AnalyticsRepository holds the read-only aggregate queries behind the reports.
type AnalyticsRepository interface {
	PopularDestinations(ctx context.Context) ([]domain.DestinationPopularity, error)
	CountCancellations(ctx context.Context) (int64, error)
	CountRefundRequests(ctx context.Context) (int64, error)
	MonthlyActivity(ctx context.Context) ([]domain.MonthlyActivity, error)
	CustomerSpending(ctx context.Context) ([]domain.CustomerSpending, error)
	DiscountImpact(ctx context.Context) ([]domain.DiscountImpact, error)
}

type PGAnalyticsRepository struct {
	db DBTX
}

func NewAnalyticsRepository(db DBTX) AnalyticsRepository {
	return &PGAnalyticsRepository{db: db}
}

// PopularDestinations aggregates bookings and review ratings per hotel first, so the
// two counts never multiply each other through the joins.
func (r *PGAnalyticsRepository) PopularDestinations(ctx context.Context) ([]domain.DestinationPopularity, error) {
	rows, err := r.db.Query(ctx, `
		WITH bookings AS (
			SELECT hotel_id, COUNT(*) AS total
			FROM reservations
			WHERE hotel_id IS NOT NULL
			GROUP BY hotel_id
		), ratings AS (
			SELECT hotel_id, SUM(rating) AS rating_sum, COUNT(*) AS rating_count
			FROM reviews
			WHERE hotel_id IS NOT NULL
			GROUP BY hotel_id
		)
		SELECT h.city,
			COALESCE(SUM(b.total), 0)::bigint AS total_bookings,
			COALESCE(ROUND(SUM(rt.rating_sum)::numeric / NULLIF(SUM(rt.rating_count), 0), 2), 0)::float8 AS avg_rating
		FROM hotels h
		LEFT JOIN bookings b ON b.hotel_id = h.hotel_id
		LEFT JOIN ratings rt ON rt.hotel_id = h.hotel_id
		GROUP BY h.city
		ORDER BY total_bookings DESC, avg_rating DESC, MIN(h.hotel_id)`)
	if err != nil {
		return nil, classify("popular destinations", err)
	}
	out, err := collect(rows, func(row pgx.Row, d *domain.DestinationPopularity) error {
		return row.Scan(&d.City, &d.TotalBookings, &d.AvgRating)
	})
	return out, classify("popular destinations", err)
}

func (r *PGAnalyticsRepository) CountCancellations(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cancellations`).Scan(&n)
	return n, classify("count cancellations", err)
}

func (r *PGAnalyticsRepository) CountRefundRequests(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM refund_requests`).Scan(&n)
	return n, classify("count refund requests", err)
}

// MonthlyActivity counts hotel check-ins per calendar month in UTC.
func (r *PGAnalyticsRepository) MonthlyActivity(ctx context.Context) ([]domain.MonthlyActivity, error) {
	rows, err := r.db.Query(ctx, `SELECT EXTRACT(MONTH FROM check_in_time AT TIME ZONE 'UTC')::int AS month,
			COUNT(*) AS total_activity
		FROM hotels
		WHERE check_in_time IS NOT NULL
		GROUP BY month
		ORDER BY total_activity DESC, month`)
	if err != nil {
		return nil, classify("monthly activity", err)
	}
	out, err := collect(rows, func(row pgx.Row, m *domain.MonthlyActivity) error {
		return row.Scan(&m.Month, &m.TotalActivity)
	})
	return out, classify("monthly activity", err)
}

// CustomerSpending lists every traveler with the number of paid payments on their reservations.
func (r *PGAnalyticsRepository) CustomerSpending(ctx context.Context) ([]domain.CustomerSpending, error) {
	rows, err := r.db.Query(ctx, `SELECT t.id, t.first_name, t.last_name, COUNT(p.payment_id) AS total_paid
		FROM travelers t
		LEFT JOIN reservations r ON r.customer_id = t.id
		LEFT JOIN payments p ON p.reservation_id = r.reservation_id AND p.status = $1
		GROUP BY t.id, t.first_name, t.last_name
		ORDER BY total_paid DESC, t.id`, string(domain.PaymentStatusPaid))
	if err != nil {
		return nil, classify("customer spending", err)
	}
	out, err := collect(rows, func(row pgx.Row, c *domain.CustomerSpending) error {
		return row.Scan(&c.TravelerID, &c.FirstName, &c.LastName, &c.TotalPaidBookings)
	})
	return out, classify("customer spending", err)
}

// DiscountImpact classifies packages by whether a discount row exists and counts the
// distinct reservations linked through any of the three package slots.
func (r *PGAnalyticsRepository) DiscountImpact(ctx context.Context) ([]domain.DiscountImpact, error) {
	rows, err := r.db.Query(ctx, `
		WITH classified AS (
			SELECT p.package_id, p.flight_reservation_id, p.hotel_reservation_id, p.rental_car_reservation_id,
				CASE WHEN EXISTS (SELECT 1 FROM package_discounts d WHERE d.package_id = p.package_id)
					THEN $1::text ELSE $2::text
				END AS package_type
			FROM travel_packages p
		)
		SELECT c.package_type, COUNT(DISTINCT r.reservation_id) AS total_reservations
		FROM classified c
		LEFT JOIN reservations r
			ON r.reservation_id IN (c.flight_reservation_id, c.hotel_reservation_id, c.rental_car_reservation_id)
		GROUP BY c.package_type
		ORDER BY c.package_type`, string(domain.PackageClassDiscounted), string(domain.PackageClassNonDiscounted))
	if err != nil {
		return nil, classify("discount impact", err)
	}
	out, err := collect(rows, func(row pgx.Row, d *domain.DiscountImpact) error {
		return row.Scan(&d.PackageType, &d.TotalReservations)
	})
	return out, classify("discount impact", err)
}

var _ AnalyticsRepository = (*PGAnalyticsRepository)(nil)
