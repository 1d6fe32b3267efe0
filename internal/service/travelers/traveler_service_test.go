package travelers

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/Domenick1991/traveldesk/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTravelerRepository struct {
	mock.Mock
}

func (m *MockTravelerRepository) List(ctx context.Context) ([]domain.Traveler, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Traveler), args.Error(1)
}

func (m *MockTravelerRepository) GetByID(ctx context.Context, id string) (*domain.Traveler, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Traveler), args.Error(1)
}

func (m *MockTravelerRepository) Create(ctx context.Context, traveler *domain.Traveler) error {
	args := m.Called(ctx, traveler)
	return args.Error(0)
}

func (m *MockTravelerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByTraveler(ctx context.Context, travelerID string) ([]domain.Notification, error) {
	args := m.Called(ctx, travelerID)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) List(ctx context.Context, customerID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func newTraveler() *domain.Traveler {
	return &domain.Traveler{ID: " T200 ", FirstName: "Ana", LastName: "Lima", Email: "ana@example.com"}
}

func TestTravelerService_Create_Success(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	mockProducer := &MockProducer{}
	service := NewTravelerService(mockRepo, nil, nil, WithProducer(mockProducer, "traveler_events"))

	ctx := context.Background()
	traveler := newTraveler()

	mockRepo.On("Create", ctx, traveler).Return(nil).Once()
	mockProducer.On("Publish", ctx, "traveler_events", "T200", mock.MatchedBy(func(e kafka.TravelerEvent) bool {
		return e.Type == kafka.EventTravelerRegistered && e.TravelerID == "T200" && e.Email == "ana@example.com"
	})).Return(nil).Once()

	err := service.Create(ctx, traveler)

	assert.NoError(t, err)
	assert.Equal(t, "T200", traveler.ID)
	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestTravelerService_Create_PublishFailureIgnored(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	mockProducer := &MockProducer{}
	service := NewTravelerService(mockRepo, nil, nil, WithProducer(mockProducer, "traveler_events"))

	ctx := context.Background()
	traveler := newTraveler()

	mockRepo.On("Create", ctx, traveler).Return(nil).Once()
	mockProducer.On("Publish", ctx, "traveler_events", "T200", mock.Anything).Return(errors.New("kafka down")).Once()

	err := service.Create(ctx, traveler)

	assert.NoError(t, err)
	mockProducer.AssertExpectations(t)
}

func TestTravelerService_Create_Validation(t *testing.T) {
	tests := []struct {
		name     string
		traveler *domain.Traveler
	}{
		{name: "missing id", traveler: &domain.Traveler{FirstName: "Ana", LastName: "Lima", Email: "ana@example.com"}},
		{name: "blank first name", traveler: &domain.Traveler{ID: "T1", FirstName: "  ", LastName: "Lima", Email: "ana@example.com"}},
		{name: "malformed email", traveler: &domain.Traveler{ID: "T1", FirstName: "Ana", LastName: "Lima", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockTravelerRepository{}
			mockProducer := &MockProducer{}
			service := NewTravelerService(mockRepo, nil, nil, WithProducer(mockProducer, "traveler_events"))

			err := service.Create(context.Background(), tt.traveler)

			assert.True(t, domain.IsKind(err, domain.ErrorKindValidation))
			mockRepo.AssertNotCalled(t, "Create")
			mockProducer.AssertNotCalled(t, "Publish")
		})
	}
}

func TestTravelerService_Create_Conflict(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	mockProducer := &MockProducer{}
	service := NewTravelerService(mockRepo, nil, nil, WithProducer(mockProducer, "traveler_events"))

	ctx := context.Background()
	traveler := newTraveler()
	conflict := domain.NewError(domain.ErrorKindConflict, "traveler T200 already exists", nil)
	mockRepo.On("Create", ctx, traveler).Return(conflict).Once()

	err := service.Create(ctx, traveler)

	assert.Equal(t, conflict, err)
	mockProducer.AssertNotCalled(t, "Publish")
}

func TestTravelerService_Create_WithoutProducer(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	service := NewTravelerService(mockRepo, nil, nil)

	ctx := context.Background()
	traveler := newTraveler()
	mockRepo.On("Create", ctx, traveler).Return(nil).Once()

	assert.NoError(t, service.Create(ctx, traveler))
	mockRepo.AssertExpectations(t)
}

func TestTravelerService_GetAndDelete(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	service := NewTravelerService(mockRepo, nil, nil)
	ctx := context.Background()

	traveler := &domain.Traveler{ID: "T100", FirstName: "Maya"}
	mockRepo.On("GetByID", ctx, "T100").Return(traveler, nil).Once()
	mockRepo.On("Delete", ctx, "T100").Return(domain.Dependencyf("traveler T100 is still referenced by other records")).Once()

	got, err := service.Get(ctx, " T100")
	assert.NoError(t, err)
	assert.Equal(t, traveler, got)

	err = service.Delete(ctx, "T100")
	assert.True(t, domain.IsKind(err, domain.ErrorKindDependency))

	_, err = service.Get(ctx, "  ")
	assert.True(t, domain.IsKind(err, domain.ErrorKindValidation))

	mockRepo.AssertExpectations(t)
}

func TestTravelerService_Notifications(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	mockNotifications := &MockNotificationRepository{}
	service := NewTravelerService(mockRepo, mockNotifications, nil)
	ctx := context.Background()

	notifications := []domain.Notification{{ID: 1, TravelerID: "T100", Message: "Welcome", Channel: "email"}}
	mockRepo.On("GetByID", ctx, "T100").Return(&domain.Traveler{ID: "T100"}, nil).Once()
	mockNotifications.On("ListByTraveler", ctx, "T100").Return(notifications, nil).Once()

	result, err := service.Notifications(ctx, "T100")

	assert.NoError(t, err)
	assert.Equal(t, notifications, result)
}

func TestTravelerService_Notifications_UnknownTraveler(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	mockNotifications := &MockNotificationRepository{}
	service := NewTravelerService(mockRepo, mockNotifications, nil)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, "T999").Return(nil, domain.NotFoundf("traveler T999 not found")).Once()

	_, err := service.Notifications(ctx, "T999")

	assert.True(t, domain.IsKind(err, domain.ErrorKindNotFound))
	mockNotifications.AssertNotCalled(t, "ListByTraveler")
}

func TestTravelerService_Reservations(t *testing.T) {
	mockReservations := &MockReservationRepository{}
	service := NewTravelerService(nil, nil, mockReservations)
	ctx := context.Background()

	reservations := []domain.Reservation{{ReservationID: 1, ReservationName: "Hudson Grand", CustomerID: "T100"}}
	mockReservations.On("List", ctx, "T100").Return(reservations, nil).Once()

	result, err := service.Reservations(ctx, " T100 ")

	assert.NoError(t, err)
	assert.Equal(t, reservations, result)
}
