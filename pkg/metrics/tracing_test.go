package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T) *newrelic.Application {
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("zebec-go-test"),
		newrelic.ConfigEnabled(false),
	)
	require.NoError(t, err)
	return app
}

func TestTraceMethodCall_NoApplication(t *testing.T) {
	tracer := TraceMethodCall(context.Background(), "stream", "DepositNative")
	assert.Nil(t, tracer)

	// Nil tracers are no-ops
	tracer.AddAttribute("key", "value")
	tracer.AddAttributes(map[string]interface{}{"key": "value"})
	tracer.OnError(errors.New("failure"))
	tracer.End()

	RecordCount(context.Background(), "count", 1)
	RecordDuration(context.Background(), "duration", time.Second)
	RecordEvent(context.Background(), "event", nil)
}

func TestTraceMethodCall_WithApplication(t *testing.T) {
	app := newTestApplication(t)
	ctx := NewContext(context.Background(), app)

	tracer := TraceMethodCall(ctx, "stream", "DepositNative")
	require.NotNil(t, tracer)
	assert.True(t, tracer.ownsTxn)
	tracer.AddAttribute("amount", 1)
	tracer.OnError(errors.New("failure"))
	tracer.End()

	RecordCount(ctx, "count", 1)
	RecordDuration(ctx, "duration", time.Second)
	RecordEvent(ctx, "event", map[string]interface{}{"key": "value"})
}

func TestTraceMethodCall_WithTransaction(t *testing.T) {
	app := newTestApplication(t)
	txn := app.StartTransaction("parent")
	defer txn.End()

	ctx := newrelic.NewContext(context.Background(), txn)
	tracer := TraceMethodCall(ctx, "stream", "WithdrawNative")
	require.NotNil(t, tracer)
	assert.False(t, tracer.ownsTxn)
	assert.Equal(t, txn, tracer.txn)
	tracer.End()
}
