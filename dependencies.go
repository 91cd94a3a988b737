// Package recordstore wires the shared dependencies of all contexts:
// configuration, logger, OpenTelemetry providers, the HTTP routers and the status endpoint.
package recordstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	prometheusSDK "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"golang.org/x/sync/errgroup"

	"github.com/go-arrower/recordstore/alog"
	"github.com/go-arrower/recordstore/mw"
)

var ErrMissingDependency = errors.New("missing dependency")

// RecordCounter reports how many records a context currently holds.
type RecordCounter func(ctx context.Context) (int, error)

// Container holds global dependencies that can be used within each Context, to make initialisation easier.
type Container struct {
	Logger        *slog.Logger
	MeterProvider *metric.MeterProvider
	TraceProvider *trace.TracerProvider

	Config *Config

	WebRouter *echo.Echo
	APIRouter *echo.Group

	registry       *prometheusSDK.Registry
	statusEndpoint *http.Server
	startedAt      time.Time

	mu       sync.Mutex
	counters map[string]RecordCounter
}

func (c *Container) EnsureAllDependenciesPresent() error {
	if c.Config == nil {
		return fmt.Errorf("%w: global config not found", ErrMissingDependency)
	}

	if c.Logger == nil || c.TraceProvider == nil || c.MeterProvider == nil {
		return fmt.Errorf("%w: observability not initialised", ErrMissingDependency)
	}

	if c.WebRouter == nil || c.APIRouter == nil {
		return fmt.Errorf("%w: routers not initialised", ErrMissingDependency)
	}

	return nil
}

// RegisterRecordCounter makes the number of records of a context visible on the status endpoint.
// Registering the same name again replaces the previous counter.
func (c *Container) RegisterRecordCounter(name string, counter RecordCounter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.counters == nil {
		c.counters = map[string]RecordCounter{}
	}

	c.counters[name] = counter
}

func InitialiseDefaultDependencies(ctx context.Context, conf *Config) (*Container, error) {
	if conf == nil {
		return nil, fmt.Errorf("%w: global config not found", ErrMissingDependency)
	}

	if conf.InstanceName == "" {
		conf.InstanceName = getOutboundIP()
	}

	dc := &Container{
		Config:    conf,
		startedAt: time.Now(),
		counters:  map[string]RecordCounter{},
	}

	{ // observability
		resource := resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(conf.ApplicationName),
			semconv.ServiceInstanceIDKey.String(conf.InstanceName),
			attribute.String("environment", string(conf.Environment)),
		)

		{ // traces
			opts := []trace.TracerProviderOption{
				trace.WithResource(resource),
				trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(0.6))),
			}

			if conf.Environment == LocalEnv || conf.Environment == TestEnv {
				opts = append(opts, trace.WithSampler(trace.AlwaysSample()))
			}

			if conf.OTEL.Enabled {
				traceExporter, err := otlptracegrpc.New(ctx,
					otlptracegrpc.WithEndpoint(fmt.Sprintf("%s:%d", conf.OTEL.Host, conf.OTEL.Port)),
					otlptracegrpc.WithInsecure(),
				)
				if err != nil {
					return nil, fmt.Errorf("could not connect to trace exporter: %w", err)
				}

				opts = append(opts, trace.WithBatcher(traceExporter))
			}

			dc.TraceProvider = trace.NewTracerProvider(opts...)
			otel.SetTracerProvider(dc.TraceProvider)
		}

		{ // metrics
			// every container has its own registry, so more than one can exist, e.g. in tests.
			dc.registry = prometheusSDK.NewRegistry()

			exporter, err := prometheus.New(prometheus.WithRegisterer(dc.registry))
			if err != nil {
				return nil, fmt.Errorf("could not create prometheus exporter: %w", err)
			}

			dc.MeterProvider = metric.NewMeterProvider(
				metric.WithResource(resource),
				metric.WithReader(exporter),
			)
			otel.SetMeterProvider(dc.MeterProvider)
		}
	}

	{ // logger
		logger := alog.New()
		if conf.Environment == LocalEnv {
			logger = alog.NewDevelopment()
		}

		alog.Unwrap(logger).SetLevel(conf.Log.Level)

		dc.Logger = logger.With(
			slog.String("application_name", conf.ApplicationName),
			slog.String("instance_name", conf.InstanceName),
			slog.String("git_hash", gitHash()),
			slog.String("environment", string(conf.Environment)),
		)
	}

	{ // web routers
		router := echo.New()
		router.HideBanner = true
		router.HidePort = true
		router.Logger.SetOutput(io.Discard)
		router.IPExtractor = echo.ExtractIPFromXFFHeader() // see: https://echo.labstack.com/docs/ip-address
		router.HTTPErrorHandler = mw.ErrorHandler(dc.Logger)

		router.Use(otelecho.Middleware(conf.OTEL.Hostname, otelecho.WithTracerProvider(dc.TraceProvider)))
		router.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  metricName(conf.ApplicationName),
			Registerer: dc.registry,
		}))
		router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TargetHeader: "Request-Id",
			Generator:    func() string { return ulid.Make().String() },
			RequestIDHandler: func(c echo.Context, rid string) {
				c.SetRequest(c.Request().WithContext(alog.AddAttr(
					c.Request().Context(),
					slog.String("request_id", rid)),
				))
			},
		}))
		router.Use(mw.RequestLogger(dc.Logger))
		router.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{DisableErrorHandler: true}))

		if conf.Environment == LocalEnv {
			router.Debug = true
		}

		dc.WebRouter = router
		dc.APIRouter = router.Group("/api")
	}

	return dc, nil
}

// Run serves the API and the status endpoint until ctx is cancelled or a server fails.
// On return, all servers and providers are shut down.
func (c *Container) Run(ctx context.Context) error {
	c.Logger.LogAttrs(ctx, alog.LevelInfo, "starting all servers")

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		err := c.WebRouter.Start(fmt.Sprintf(":%d", c.Config.HTTP.Port))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not serve api: %w", err)
		}

		return nil
	})

	if c.Config.HTTP.StatusEndpointEnabled {
		c.statusEndpoint = newStatusEndpoint(c)

		group.Go(func() error {
			c.Logger.InfoContext(gctx, "serving status endpoint", slog.String("addr", c.statusEndpoint.Addr))

			err := c.statusEndpoint.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("could not serve status endpoint: %w", err)
			}

			return nil
		})
	}

	group.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second) //nolint:mnd // grace period
		defer cancel()

		return c.Shutdown(shutdownCtx)
	})

	return group.Wait() //nolint:wrapcheck // errors are wrapped by the goroutines
}

// Shutdown stops all servers and flushes the telemetry providers.
func (c *Container) Shutdown(ctx context.Context) error {
	c.Logger.LogAttrs(ctx, alog.LevelInfo, "shutting down all servers")

	var err error

	err = errors.Join(err, c.WebRouter.Shutdown(ctx))

	if c.statusEndpoint != nil {
		err = errors.Join(err, c.statusEndpoint.Shutdown(ctx))
	}

	err = errors.Join(err, c.TraceProvider.Shutdown(ctx), c.MeterProvider.Shutdown(ctx))
	if err != nil {
		return fmt.Errorf("could not shut down: %w", err)
	}

	return nil
}

// metricName makes name usable as part of a prometheus metric name.
func metricName(name string) string {
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(name)
}

func gitHash() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return "unknown"
}

// getOutboundIP returns the preferred outbound ip of this machine.
// No connection is established, the destination does not need to exist.
func getOutboundIP() string {
	conn, err := net.Dial("udp", "5.1.66.255:80")
	if err != nil {
		return "localhost"
	}
	defer conn.Close()

	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}

	return "localhost"
}
