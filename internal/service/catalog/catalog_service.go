package catalog

import (
	"context"
	"math"
	"strings"

	"github.com/Domenick1991/traveldesk/internal/cache"
	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/Domenick1991/traveldesk/internal/logger"
	"github.com/Domenick1991/traveldesk/internal/repository"
)

type CatalogUseCase interface {
	ListHotels(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error)
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	ListRentalCars(ctx context.Context) ([]domain.RentalCar, error)
	ListTravelAgents(ctx context.Context) ([]domain.TravelAgent, error)
	ListReviews(ctx context.Context, kind string) ([]domain.Review, error)
	CreateReview(ctx context.Context, review *domain.Review) error
}

// Cache stores reference lists as JSON under a key.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// Repositories groups the stores the catalog reads from.
type Repositories struct {
	Hotels       repository.HotelRepository
	Flights      repository.FlightRepository
	Activities   repository.ActivityRepository
	RentalCars   repository.RentalCarRepository
	TravelAgents repository.TravelAgentRepository
	Reviews      repository.ReviewRepository
}

type CatalogService struct {
	repos Repositories
	cache Cache
	log   *logger.Logger
}

type CatalogServiceOption func(*CatalogService)

// WithCache enables read-through caching of reference lists.
func WithCache(c Cache) CatalogServiceOption {
	return func(s *CatalogService) {
		s.cache = c
	}
}

func WithLogger(log *logger.Logger) CatalogServiceOption {
	return func(s *CatalogService) {
		s.log = log
	}
}

func NewCatalogService(repos Repositories, opts ...CatalogServiceOption) *CatalogService {
	s := &CatalogService{repos: repos, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CatalogService) ListHotels(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error) {
	filter.City = strings.TrimSpace(filter.City)
	if math.IsNaN(filter.MinRating) || filter.MinRating < 0 || filter.MinRating > 5 {
		return nil, domain.Validationf("minRating must be between 0 and 5")
	}
	return readThrough(ctx, s, cache.HotelsKey(filter), func(ctx context.Context) ([]domain.Hotel, error) {
		return s.repos.Hotels.List(ctx, filter)
	})
}

func (s *CatalogService) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	return readThrough(ctx, s, cache.FlightsKey, s.repos.Flights.ListWithAirline)
}

func (s *CatalogService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return readThrough(ctx, s, cache.ActivitiesKey, s.repos.Activities.List)
}

func (s *CatalogService) ListRentalCars(ctx context.Context) ([]domain.RentalCar, error) {
	return readThrough(ctx, s, cache.RentalCarsKey, s.repos.RentalCars.List)
}

func (s *CatalogService) ListTravelAgents(ctx context.Context) ([]domain.TravelAgent, error) {
	return readThrough(ctx, s, cache.TravelAgentsKey, s.repos.TravelAgents.List)
}

// ListReviews is never cached; an empty kind lists every review.
func (s *CatalogService) ListReviews(ctx context.Context, kind string) ([]domain.Review, error) {
	var target domain.ReviewTargetKind
	if strings.TrimSpace(kind) != "" {
		parsed, err := domain.ParseReviewTargetKind(kind)
		if err != nil {
			return nil, err
		}
		target = parsed
	}
	return s.repos.Reviews.List(ctx, target)
}

func (s *CatalogService) CreateReview(ctx context.Context, review *domain.Review) error {
	if err := review.Check(); err != nil {
		return err
	}
	return s.repos.Reviews.Create(ctx, review)
}

// readThrough serves key from the cache when present, otherwise loads it and stores
// the result. Cache failures are logged and never fail the read.
func readThrough[T any](ctx context.Context, s *CatalogService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if s.cache != nil {
		var cached []T
		ok, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.WithFields(logger.Fields{"key": key}).WithError(err).Warn("cache read failed")
		}
		if ok && cached != nil {
			return cached, nil
		}
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, items); err != nil {
			s.log.WithFields(logger.Fields{"key": key}).WithError(err).Warn("cache write failed")
		}
	}
	return items, nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
