package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/fleetdecolombia/FleetMantenimiento/core/metrics"
)

// PromSink records maintenance closures in Prometheus metrics.
type PromSink struct {
	closures     *prometheus.CounterVec
	downtimeDays *prometheus.HistogramVec
	totalCost    *prometheus.HistogramVec
	availability *prometheus.GaugeVec
}

// NewPromSink registers maintenance metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already registered are reused.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	closures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "maintenance_closures_total",
		Help: "Total number of closed service orders",
	}, []string{"vehicle_id", "order_type"})
	downtimeDays := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "maintenance_downtime_days",
		Help:    "Billable downtime days per closed order",
		Buckets: []float64{1, 2, 3, 5, 7, 14, 30},
	}, []string{"vehicle_id", "order_type"})
	totalCost := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "maintenance_total_cost",
		Help:    "Total cost per closed order including parts, labor and downtime",
		Buckets: prometheus.ExponentialBuckets(100, 2, 10),
	}, []string{"vehicle_id", "order_type"})
	availability := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fleet_vehicle_availability_percent",
		Help: "OEE availability percentage per vehicle over the configured window",
	}, []string{"vehicle_id"})

	if err := reg.Register(closures); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			closures = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(downtimeDays); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			downtimeDays = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(totalCost); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			totalCost = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(availability); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			availability = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{closures: closures, downtimeDays: downtimeDays, totalCost: totalCost, availability: availability}, nil
}

// RecordClosure increments the counters for each closed order.
func (s *PromSink) RecordClosure(res []coremetrics.ClosureResult) error {
	for _, r := range res {
		labels := []string{r.VehicleID, r.Type.String()}
		s.closures.WithLabelValues(labels...).Inc()
		s.downtimeDays.WithLabelValues(labels...).Observe(float64(r.DowntimeDays))
		s.totalCost.WithLabelValues(labels...).Observe(r.TotalCost)
	}
	return nil
}

// RecordAvailability updates the per-vehicle availability gauge.
func (s *PromSink) RecordAvailability(vehicleID string, pct float64) error {
	s.availability.WithLabelValues(vehicleID).Set(pct)
	return nil
}
