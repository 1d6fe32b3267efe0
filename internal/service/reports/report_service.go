// Package reports composes the read-only analytical reports. Every report runs in its
// own trace span and returns the fixed domain.Report envelope.
package reports

import (
	"context"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/Domenick1991/traveldesk/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/Domenick1991/traveldesk/internal/service/reports"

type ReportUseCase interface {
	PopularDestinations(ctx context.Context) (*domain.Report, error)
	CancellationsRefunds(ctx context.Context) (*domain.Report, error)
	HighestActivity(ctx context.Context) (*domain.Report, error)
	CustomerSpending(ctx context.Context) (*domain.Report, error)
	DiscountImpact(ctx context.Context) (*domain.Report, error)
	Run(ctx context.Context, name string) (*domain.Report, error)
}

type ReportService struct {
	repo   repository.AnalyticsRepository
	tracer trace.Tracer
}

type ReportServiceOption func(*ReportService)

func WithTracerProvider(tp trace.TracerProvider) ReportServiceOption {
	return func(s *ReportService) {
		s.tracer = tp.Tracer(tracerName)
	}
}

func NewReportService(repo repository.AnalyticsRepository, opts ...ReportServiceOption) *ReportService {
	s := &ReportService{repo: repo, tracer: otel.Tracer(tracerName)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the report with the given public name.
func (s *ReportService) Run(ctx context.Context, name string) (*domain.Report, error) {
	reportName, err := domain.ParseReportName(name)
	if err != nil {
		return nil, err
	}
	switch reportName {
	case domain.ReportPopularDestinations:
		return s.PopularDestinations(ctx)
	case domain.ReportCancellationsRefunds:
		return s.CancellationsRefunds(ctx)
	case domain.ReportHighestActivity:
		return s.HighestActivity(ctx)
	case domain.ReportCustomerSpending:
		return s.CustomerSpending(ctx)
	default:
		return s.DiscountImpact(ctx)
	}
}

func (s *ReportService) PopularDestinations(ctx context.Context) (*domain.Report, error) {
	return traced(ctx, s, domain.ReportPopularDestinations,
		"Cities ranked by hotel bookings, then by average hotel review rating",
		s.repo.PopularDestinations)
}

// CancellationsRefunds issues its two counts concurrently. The counts cover all
// time; no reporting window is applied.
func (s *ReportService) CancellationsRefunds(ctx context.Context) (*domain.Report, error) {
	return traced(ctx, s, domain.ReportCancellationsRefunds,
		"Total cancellations and refund requests (all time, no reporting window applied)",
		func(ctx context.Context) ([]domain.CancellationSummary, error) {
			var summary domain.CancellationSummary
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				n, err := s.repo.CountCancellations(gctx)
				summary.TotalCancellations = n
				return err
			})
			g.Go(func() error {
				n, err := s.repo.CountRefundRequests(gctx)
				summary.TotalRefundRequests = n
				return err
			})
			if err := g.Wait(); err != nil {
				return nil, err
			}
			return []domain.CancellationSummary{summary}, nil
		})
}

func (s *ReportService) HighestActivity(ctx context.Context) (*domain.Report, error) {
	return traced(ctx, s, domain.ReportHighestActivity,
		"Hotel check-ins per calendar month (UTC), busiest month first",
		s.repo.MonthlyActivity)
}

func (s *ReportService) CustomerSpending(ctx context.Context) (*domain.Report, error) {
	return traced(ctx, s, domain.ReportCustomerSpending,
		"Paid bookings per traveler",
		s.repo.CustomerSpending)
}

func (s *ReportService) DiscountImpact(ctx context.Context) (*domain.Report, error) {
	return traced(ctx, s, domain.ReportDiscountImpact,
		"Reservations in discounted and non-discounted travel packages",
		s.repo.DiscountImpact)
}

func traced[T any](ctx context.Context, s *ReportService, name domain.ReportName, message string, query func(context.Context) ([]T, error)) (*domain.Report, error) {
	ctx, span := s.tracer.Start(ctx, "report "+string(name),
		trace.WithAttributes(attribute.String("report.name", string(name))))
	defer span.End()

	rows, err := query(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}
	span.SetAttributes(attribute.Int("report.rows", len(rows)))
	return &domain.Report{Name: name, Message: message, Rows: rows}, nil
}

var _ ReportUseCase = (*ReportService)(nil)
