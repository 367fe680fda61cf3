package championship

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
)

var competitorsRegistered = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "championship_competitors_registered_total",
	Help: "A counter for competitors registered in championships.",
})

var eventResultsAdded = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "championship_event_results_added_total",
	Help: "A counter for event results added to championships.",
})

var entriesRecorded = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "championship_entries_recorded_total",
	Help: "A counter for competitor entries recorded in event results.",
})

var pointsAwarded = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "championship_points_awarded_total",
	Help: "A counter for points awarded to competitors.",
})

// InitMonitoring registers the championship counters with the default prometheus registry.
func InitMonitoring() {
	logrus.Infof("initialising Prometheus Monitoring")
	prometheus.MustRegister(competitorsRegistered, eventResultsAdded, entriesRecorded, pointsAwarded)
}

// WriteMetrics writes everything gathered by g in the text exposition format.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()

	if err != nil {
		return err
	}

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}

	return nil
}
