package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Domenick1991/traveldesk/internal/database"
	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededPool returns a pool bound to a fresh schema holding the migrated and seeded
// demo data. Tests using it are skipped unless TRAVELDESK_TEST_DATABASE_URL is set.
func seededPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TRAVELDESK_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TRAVELDESK_TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()

	admin, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(admin.Close)

	schema := fmt.Sprintf("traveldesk_test_%d", time.Now().UnixNano())
	_, err = admin.Exec(ctx, `CREATE SCHEMA `+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = admin.Exec(context.Background(), `DROP SCHEMA `+schema+` CASCADE`)
	})

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = schema
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = database.Migrate(ctx, pool)
	require.NoError(t, err)
	require.NoError(t, database.Seed(ctx, pool))
	return pool
}

func TestHotelRepository_ListByCityAndRating(t *testing.T) {
	pool := seededPool(t)
	repo := NewHotelRepository(pool)

	hotels, err := repo.List(context.Background(), domain.HotelFilter{City: "New York", MinRating: 4.0})
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Hudson Grand", hotels[0].HotelName)
	assert.Equal(t, 4.5, hotels[0].AverageRating)

	hotels, err = repo.List(context.Background(), domain.HotelFilter{City: "Atlantis"})
	require.NoError(t, err)
	assert.NotNil(t, hotels)
	assert.Empty(t, hotels)
}

func TestFlightAndCatalogRepositories_List(t *testing.T) {
	pool := seededPool(t)
	ctx := context.Background()

	flights, err := NewFlightRepository(pool).ListWithAirline(ctx)
	require.NoError(t, err)
	require.Len(t, flights, 3)
	assert.Equal(t, "Atlantic Air", flights[0].AirlineName)

	activities, err := NewActivityRepository(pool).List(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, []string{"New York", "San Francisco"}, activities[0].Cities)
	assert.Equal(t, []string{"New York"}, activities[1].Cities)

	cars, err := NewRentalCarRepository(pool).List(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, 39.99, cars[0].RentalPricePerDay)

	agents, err := NewTravelAgentRepository(pool).List(ctx)
	require.NoError(t, err)
	assert.Len(t, agents, 2)
}

func TestTravelerRepository_Lifecycle(t *testing.T) {
	pool := seededPool(t)
	repo := NewTravelerRepository(pool)
	ctx := context.Background()

	err := repo.Create(ctx, &domain.Traveler{ID: "T100", FirstName: "Dup", LastName: "Licate", Email: "dup@example.com"})
	assert.True(t, domain.IsKind(err, domain.ErrorKindConflict))

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM travelers WHERE id = 'T100'`).Scan(&count))
	assert.Equal(t, 1, count)

	travelers, err := repo.List(ctx)
	require.NoError(t, err)
	matches := 0
	for _, tr := range travelers {
		if tr.ID == "T100" {
			matches++
			assert.NotEqual(t, "dup@example.com", tr.Email)
		}
	}
	assert.Equal(t, 1, matches)

	traveler := &domain.Traveler{ID: "T200", FirstName: "Ana", LastName: "Lima", Email: "ana@example.com"}
	require.NoError(t, repo.Create(ctx, traveler))
	assert.False(t, traveler.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, "T200")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", got.Email)

	err = repo.Delete(ctx, "T100")
	assert.True(t, domain.IsKind(err, domain.ErrorKindDependency))
	_, err = repo.GetByID(ctx, "T100")
	assert.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "T200"))
	err = repo.Delete(ctx, "T200")
	assert.True(t, domain.IsKind(err, domain.ErrorKindNotFound))
	_, err = repo.GetByID(ctx, "T200")
	assert.True(t, domain.IsKind(err, domain.ErrorKindNotFound))
}

func TestReviewRepository_CreateAndList(t *testing.T) {
	pool := seededPool(t)
	repo := NewReviewRepository(pool)
	ctx := context.Background()

	missing := &domain.Review{Name: "Ghost", Rating: 3, Author: "Nobody",
		ReviewTarget: domain.ReviewTarget{Kind: domain.ReviewTargetHotel, ID: 99}}
	err := repo.Create(ctx, missing)
	assert.True(t, domain.IsKind(err, domain.ErrorKindDependency))
	assert.Equal(t, "reviewed Hotel 99 does not exist", err.Error())

	review := &domain.Review{Name: "Sea breeze", Rating: 5, Author: "Jon",
		ReviewTarget: domain.ReviewTarget{Kind: domain.ReviewTargetHotel, ID: 4}}
	require.NoError(t, repo.Create(ctx, review))
	assert.NotZero(t, review.ReviewID)

	hotelReviews, err := repo.List(ctx, domain.ReviewTargetHotel)
	require.NoError(t, err)
	assert.Len(t, hotelReviews, 3)
	for _, r := range hotelReviews {
		assert.Equal(t, domain.ReviewTargetHotel, r.Kind)
	}

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestReservationRepository_ListByCustomer(t *testing.T) {
	pool := seededPool(t)
	repo := NewReservationRepository(pool)

	reservations, err := repo.List(context.Background(), "T100")
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	require.NotNil(t, reservations[0].HotelID)
	assert.Equal(t, int64(1), *reservations[0].HotelID)

	all, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestNotificationRepository_CreateAndList(t *testing.T) {
	pool := seededPool(t)
	repo := NewNotificationRepository(pool)
	ctx := context.Background()

	n := &domain.Notification{TravelerID: "T101", Message: "Welcome aboard", Channel: "email"}
	require.NoError(t, repo.Create(ctx, n))
	assert.NotZero(t, n.ID)

	list, err := repo.ListByTraveler(ctx, "T101")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Welcome aboard", list[0].Message)

	err = repo.Create(ctx, &domain.Notification{TravelerID: "T999", Message: "x", Channel: "email"})
	assert.True(t, domain.IsKind(err, domain.ErrorKindDependency))
}

func TestAnalyticsRepository_Reports(t *testing.T) {
	pool := seededPool(t)
	repo := NewAnalyticsRepository(pool)
	ctx := context.Background()

	popular, err := repo.PopularDestinations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.DestinationPopularity{
		{City: "New York", TotalBookings: 2, AvgRating: 4.5},
		{City: "Chicago", TotalBookings: 1, AvgRating: 0},
		{City: "San Francisco", TotalBookings: 0, AvgRating: 0},
	}, popular)

	cancellations, err := repo.CountCancellations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cancellations)

	refunds, err := repo.CountRefundRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), refunds)

	monthly, err := repo.MonthlyActivity(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.MonthlyActivity{
		{Month: 3, TotalActivity: 2},
		{Month: 7, TotalActivity: 1},
	}, monthly)

	spending, err := repo.CustomerSpending(ctx)
	require.NoError(t, err)
	require.Len(t, spending, 3)
	assert.Equal(t, "T101", spending[0].TravelerID)
	assert.Equal(t, int64(2), spending[0].TotalPaidBookings)
	assert.Equal(t, "T100", spending[1].TravelerID)
	assert.Equal(t, int64(1), spending[1].TotalPaidBookings)
	assert.Equal(t, int64(0), spending[2].TotalPaidBookings)

	impact, err := repo.DiscountImpact(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.DiscountImpact{
		{PackageType: domain.PackageClassDiscounted, TotalReservations: 2},
		{PackageType: domain.PackageClassNonDiscounted, TotalReservations: 2},
	}, impact)
}

func TestAnalyticsRepository_EmptyHotels(t *testing.T) {
	pool := seededPool(t)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `TRUNCATE hotels CASCADE`)
	require.NoError(t, err)

	popular, err := NewAnalyticsRepository(pool).PopularDestinations(ctx)
	require.NoError(t, err)
	assert.Empty(t, popular)
}
