package metrics

import (
	"context"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

type newRelicContextKey struct{}

// NewContext returns a context carrying app, which is used for events, custom
// metrics and traces that aren't part of an existing transaction.
func NewContext(ctx context.Context, app *newrelic.Application) context.Context {
	return context.WithValue(ctx, newRelicContextKey{}, app)
}

func appFromContext(ctx context.Context) *newrelic.Application {
	app, _ := ctx.Value(newRelicContextKey{}).(*newrelic.Application)
	return app
}

// RecordCount records a count metric
func RecordCount(ctx context.Context, metricName string, count uint64) {
	if app := appFromContext(ctx); app != nil {
		app.RecordCustomMetric(metricName, float64(count))
	}
}

// RecordDuration records a duration metric
func RecordDuration(ctx context.Context, metricName string, duration time.Duration) {
	if app := appFromContext(ctx); app != nil {
		app.RecordCustomMetric(metricName, float64(duration/time.Millisecond))
	}
}
