package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReportUseCase struct {
	mock.Mock
}

func (m *MockReportUseCase) report(args mock.Arguments) (*domain.Report, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportUseCase) PopularDestinations(ctx context.Context) (*domain.Report, error) {
	return m.report(m.Called(ctx))
}

func (m *MockReportUseCase) CancellationsRefunds(ctx context.Context) (*domain.Report, error) {
	return m.report(m.Called(ctx))
}

func (m *MockReportUseCase) HighestActivity(ctx context.Context) (*domain.Report, error) {
	return m.report(m.Called(ctx))
}

func (m *MockReportUseCase) CustomerSpending(ctx context.Context) (*domain.Report, error) {
	return m.report(m.Called(ctx))
}

func (m *MockReportUseCase) DiscountImpact(ctx context.Context) (*domain.Report, error) {
	return m.report(m.Called(ctx))
}

func (m *MockReportUseCase) Run(ctx context.Context, name string) (*domain.Report, error) {
	return m.report(m.Called(ctx, name))
}

func TestAnalyticsHandler_run(t *testing.T) {
	mockService := &MockReportUseCase{}
	handler := NewAnalyticsHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "report", Value: "customer-spending"}}
	c.Request = httptest.NewRequest("GET", "/api/analytics/customer-spending", nil)

	report := &domain.Report{
		Name:    domain.ReportCustomerSpending,
		Message: "Paid bookings per traveler",
		Rows:    []domain.CustomerSpending{{TravelerID: "T100", FirstName: "Maya", LastName: "Rivera", TotalPaidBookings: 1}},
	}
	mockService.On("Run", c.Request.Context(), "customer-spending").Return(report, nil)

	handler.run(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Report string                    `json:"report"`
		Data   []domain.CustomerSpending `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "customer-spending", response.Report)
	assert.Equal(t, int64(1), response.Data[0].TotalPaidBookings)
}

func TestAnalyticsHandler_run_UnknownReport(t *testing.T) {
	mockService := &MockReportUseCase{}
	handler := NewAnalyticsHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "report", Value: "revenue"}}
	c.Request = httptest.NewRequest("GET", "/api/analytics/revenue", nil)

	mockService.On("Run", c.Request.Context(), "revenue").Return(nil, domain.Validationf("unknown report %q", "revenue"))

	handler.run(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `unknown report`)
}
