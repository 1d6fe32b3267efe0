package travelers

import (
	"context"
	"strings"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/Domenick1991/traveldesk/internal/kafka"
	"github.com/Domenick1991/traveldesk/internal/logger"
	"github.com/Domenick1991/traveldesk/internal/repository"
)

type TravelerUseCase interface {
	List(ctx context.Context) ([]domain.Traveler, error)
	Get(ctx context.Context, id string) (*domain.Traveler, error)
	Create(ctx context.Context, traveler *domain.Traveler) error
	Delete(ctx context.Context, id string) error
	Notifications(ctx context.Context, id string) ([]domain.Notification, error)
	Reservations(ctx context.Context, customerID string) ([]domain.Reservation, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type TravelerService struct {
	travelers     repository.TravelerRepository
	notifications repository.NotificationRepository
	reservations  repository.ReservationRepository
	producer      Producer
	topic         string
	log           *logger.Logger
}

type TravelerServiceOption func(*TravelerService)

// WithProducer publishes a registration event on topic after every create.
func WithProducer(producer Producer, topic string) TravelerServiceOption {
	return func(s *TravelerService) {
		s.producer = producer
		s.topic = topic
	}
}

func WithLogger(log *logger.Logger) TravelerServiceOption {
	return func(s *TravelerService) {
		s.log = log
	}
}

func NewTravelerService(
	travelers repository.TravelerRepository,
	notifications repository.NotificationRepository,
	reservations repository.ReservationRepository,
	opts ...TravelerServiceOption,
) *TravelerService {
	service := &TravelerService{
		travelers:     travelers,
		notifications: notifications,
		reservations:  reservations,
		log:           logger.Nop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *TravelerService) List(ctx context.Context) ([]domain.Traveler, error) {
	return s.travelers.List(ctx)
}

func (s *TravelerService) Get(ctx context.Context, id string) (*domain.Traveler, error) {
	id, err := travelerID(id)
	if err != nil {
		return nil, err
	}
	return s.travelers.GetByID(ctx, id)
}

// Create validates and stores the traveler, then announces the registration.
// A failed publish is logged and does not fail the request.
func (s *TravelerService) Create(ctx context.Context, traveler *domain.Traveler) error {
	traveler.Normalize()
	if err := domain.Validate(traveler); err != nil {
		return err
	}
	if err := s.travelers.Create(ctx, traveler); err != nil {
		return err
	}

	if err := s.publish(ctx, kafka.EventTravelerRegistered, traveler); err != nil {
		s.log.WithFields(logger.Fields{
			"traveler_id": traveler.ID,
			"topic":       s.topic,
		}).WithError(err).Warn("failed to publish traveler event")
	}
	return nil
}

func (s *TravelerService) Delete(ctx context.Context, id string) error {
	id, err := travelerID(id)
	if err != nil {
		return err
	}
	return s.travelers.Delete(ctx, id)
}

// Notifications lists what was sent to an existing traveler.
func (s *TravelerService) Notifications(ctx context.Context, id string) ([]domain.Notification, error) {
	traveler, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.notifications.ListByTraveler(ctx, traveler.ID)
}

// Reservations lists the reservations of customerID, or all of them when it is empty.
func (s *TravelerService) Reservations(ctx context.Context, customerID string) ([]domain.Reservation, error) {
	return s.reservations.List(ctx, strings.TrimSpace(customerID))
}

func (s *TravelerService) publish(ctx context.Context, eventType string, traveler *domain.Traveler) error {
	if s.producer == nil || s.topic == "" {
		return nil
	}
	event := kafka.NewTravelerEvent(eventType, traveler)
	return s.producer.Publish(ctx, s.topic, traveler.ID, event)
}

func travelerID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", domain.Validationf("id is required")
	}
	return id, nil
}

var _ TravelerUseCase = (*TravelerService)(nil)
