package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/traveldesk/api"
	"github.com/Domenick1991/traveldesk/config"
	"github.com/Domenick1991/traveldesk/internal/logger"
	"github.com/Domenick1991/traveldesk/internal/service/catalog"
	"github.com/Domenick1991/traveldesk/internal/service/reports"
	"github.com/Domenick1991/traveldesk/internal/service/travelers"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const (
	healthCheckInterval = 10 * time.Second
	shutdownTimeout     = 5 * time.Second
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services are the use cases the HTTP adapter exposes.
type Services struct {
	Travelers travelers.TravelerUseCase
	Catalog   catalog.CatalogUseCase
	Reports   reports.ReportUseCase
	// Store, when set, drives the health status reported on /healthz.
	Store Pinger
}

type Servers struct {
	grpcServer  *grpc.Server
	health      *health.Server
	httpServer  *http.Server
	gatewayConn *grpc.ClientConn
}

// Run starts the gRPC health server and the HTTP API and blocks until ctx is canceled or
// a server fails.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger, svc Services) error {
	s, err := newServers(cfg, log, svc)
	if err != nil {
		return err
	}
	defer s.gatewayConn.Close()

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if svc.Store != nil {
		go watchStore(ctx, s.health, svc.Store, log)
	}

	log.LogSystem("bootstrap", "start", true, map[string]interface{}{
		"http_address": cfg.HTTP.Address,
		"grpc_address": cfg.GRPC.Address,
	})

	select {
	case err := <-errCh:
		s.grpcServer.Stop()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.health.Shutdown()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		s.grpcServer.GracefulStop()
		log.LogSystem("bootstrap", "stop", true, nil)
		return nil
	}
}

func newServers(cfg *config.Config, log *logger.Logger, svc Services) (*Servers, error) {
	grpcSrv := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthSrv := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcSrv, healthSrv)
	reflection.Register(grpcSrv)
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	target, err := dialTarget(cfg.GRPC.Address)
	if err != nil {
		return nil, err
	}
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial gRPC health endpoint: %w", err)
	}
	gateway := runtime.NewServeMux(runtime.WithHealthzEndpoint(grpc_health_v1.NewHealthClient(conn)))

	httpSrv := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      NewRouter(cfg, log, svc, gateway),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSeconds) * time.Second,
	}

	return &Servers{
		grpcServer:  grpcSrv,
		health:      healthSrv,
		httpServer:  httpSrv,
		gatewayConn: conn,
	}, nil
}

// NewRouter builds the gin engine: middleware, the /api routes, /healthz served by
// healthz, and the API docs when a swagger directory is configured.
func NewRouter(cfg *config.Config, log *logger.Logger, svc Services, healthz http.Handler) *gin.Engine {
	router := gin.New()
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))
	router.Use(rateLimitMiddleware(log, cfg.HTTP.RateLimitPerMinute, cfg.HTTP.RateLimitBurst))

	apiGroup := router.Group("/api")
	api.NewTravelerHandler(svc.Travelers).Register(apiGroup.Group("/travelers"))
	api.NewReservationHandler(svc.Travelers).Register(apiGroup.Group("/reservations"))
	api.NewCatalogHandler(svc.Catalog).Register(apiGroup)
	api.NewAnalyticsHandler(svc.Reports).Register(apiGroup.Group("/analytics"))

	if healthz != nil {
		router.GET("/healthz", gin.WrapH(healthz))
	}

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/traveldesk.swagger.json"))))
	}

	return router
}

// watchStore flips the overall health status whenever the store stops or resumes
// answering pings.
func watchStore(ctx context.Context, h *health.Server, store Pinger, log *logger.Logger) {
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()

	serving := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, healthCheckInterval/2)
			err := store.Ping(pingCtx)
			cancel()

			if ok := err == nil; ok != serving {
				serving = ok
				status := grpc_health_v1.HealthCheckResponse_SERVING
				if !ok {
					status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
				}
				h.SetServingStatus("", status)
				log.LogSystem("health", "store_ping", ok, map[string]interface{}{"status": status.String()})
			}
		}
	}
}

// dialTarget turns a listen address such as ":5002" into one a client can dial.
func dialTarget(addr string) (string, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("invalid gRPC address %q: %w", addr, err)
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return net.JoinHostPort(host, port), nil
}
