package metrics

import (
	"sync"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/pkg/telemetry"
)

var (
	// Event lifecycle counters
	EventsCreated      *telemetry.Counter
	EventsUpdated      *telemetry.Counter
	StatusTransitions  *telemetry.Counter
	TicketSalesTotal   *telemetry.Counter
	StatsRecomputes    *telemetry.Counter
	ReportsGenerated   *telemetry.Counter
	AnalyticsSnapshots *telemetry.Counter

	initOnce sync.Once
	initErr  error
)

// Init initializes all service metrics
func Init() error {
	initOnce.Do(func() {
		initErr = initMetrics()
	})
	return initErr
}

func initMetrics() error {
	var err error

	EventsCreated, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "event_created_total",
		Description: "Total number of events created",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	EventsUpdated, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "event_updated_total",
		Description: "Total number of event updates applied",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	StatusTransitions, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "event_status_transitions_total",
		Description: "Total number of event status transitions",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	TicketSalesTotal, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "ticket_sales_total",
		Description: "Total number of ticket sales recorded",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	StatsRecomputes, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "stats_recomputes_total",
		Description: "Total number of stats recomputations",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	ReportsGenerated, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "reports_generated_total",
		Description: "Total number of report snapshots generated",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	AnalyticsSnapshots, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "analytics_snapshots_total",
		Description: "Total number of analytics snapshots initialized",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	return nil
}
