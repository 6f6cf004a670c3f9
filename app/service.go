// Package app wires the configuration, engine, metric sinks and optional
// HTTP surface into a runnable service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	apifleet "github.com/fleetdecolombia/FleetMantenimiento/api/fleet"
	"github.com/fleetdecolombia/FleetMantenimiento/config"
	"github.com/fleetdecolombia/FleetMantenimiento/core/fleet"
	"github.com/fleetdecolombia/FleetMantenimiento/core/importer"
	coremetrics "github.com/fleetdecolombia/FleetMantenimiento/core/metrics"
	"github.com/fleetdecolombia/FleetMantenimiento/infra/logger"
	"github.com/fleetdecolombia/FleetMantenimiento/infra/metrics"
	"github.com/fleetdecolombia/FleetMantenimiento/internal/eventbus"
)

// Service owns the engine and its ambient collaborators.
type Service struct {
	Store *fleet.Store

	cfg  *config.Config
	bus  *eventbus.Bus
	log  logger.Logger
	sink coremetrics.MaintenanceSink
}

// New creates a Service from the configuration and imports any configured
// seed files.
func New(cfg *config.Config) (*Service, error) {
	if lvl, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	logg := logger.New("service")

	var sinks []coremetrics.MaintenanceSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.MaintenanceSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New()
	store := fleet.New(logger.New("fleet"), bus)

	svc := &Service{Store: store, cfg: cfg, bus: bus, log: logg, sink: sink}
	if err := svc.seed(); err != nil {
		return nil, err
	}
	return svc, nil
}

// seed bulk-imports the CSV files named in the configuration. Missing
// settings are skipped; a named file that cannot be read is an error.
func (s *Service) seed() error {
	seed := s.cfg.Fleet.Seed
	if seed.Vehicles == "" && seed.Logs == "" && seed.Routines == "" {
		return nil
	}
	imp := importer.New(logger.New("importer"))
	if seed.Vehicles != "" {
		data, err := os.ReadFile(seed.Vehicles)
		if err != nil {
			return fmt.Errorf("seed vehicles: %w", err)
		}
		added := s.Store.BulkAddVehicles(imp.ParseVehicles(string(data)))
		s.log.Infof("seeded %d vehicles from %s", len(added), seed.Vehicles)
	}
	if seed.Routines != "" {
		data, err := os.ReadFile(seed.Routines)
		if err != nil {
			return fmt.Errorf("seed routines: %w", err)
		}
		added := s.Store.BulkAddRoutines(imp.ParseRoutines(string(data)))
		s.log.Infof("seeded %d routines from %s", len(added), seed.Routines)
	}
	// Logs come last so their vehicle references can resolve.
	if seed.Logs != "" {
		data, err := os.ReadFile(seed.Logs)
		if err != nil {
			return fmt.Errorf("seed logs: %w", err)
		}
		added := s.Store.BulkAddLogs(imp.ParseLogs(string(data)))
		s.log.Infof("seeded %d maintenance logs from %s", len(added), seed.Logs)
	}
	return nil
}

// Run starts the metric recorder and the HTTP servers, then blocks until the
// context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	go s.recordEvents(ctx)

	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if s.cfg.API.Enabled {
		go func() {
			if err := s.serveAPI(ctx); err != nil {
				s.log.Errorf("api server: %v", err)
			}
		}()
	}

	<-ctx.Done()
	return nil
}

func (s *Service) serveAPI(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/api/fleet/vehicles/", apifleet.NewAvailabilityHandler(s.Store, s.cfg.Fleet.OEEWindowDays))
	mux.Handle("/api/fleet/summary", apifleet.NewSummaryHandler(s.Store, s.cfg.Fleet.OEEWindowDays))
	srv := &http.Server{Addr: s.cfg.API.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api server shutdown: %v", err)
		}
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
