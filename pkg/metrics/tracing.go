package metrics

import (
	"context"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// TraceMethodCall traces a method call with a given struct/package and method
// names. The trace is a segment of the transaction in ctx. Without one, a new
// transaction is started when an application was attached via NewContext.
// Otherwise the returned tracer is nil, which is safe to use.
func TraceMethodCall(ctx context.Context, structOrPackageName, methodName string) *MethodTracer {
	name := fmt.Sprintf("%s %s", structOrPackageName, methodName)

	var ownsTxn bool
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		app := appFromContext(ctx)
		if app == nil {
			return nil
		}

		txn = app.StartTransaction(name)
		ownsTxn = true
	}

	return &MethodTracer{
		txn:     txn,
		seg:     txn.StartSegment(name),
		ownsTxn: ownsTxn,
	}
}

// MethodTracer collects analytics for a given method call
type MethodTracer struct {
	txn     *newrelic.Transaction
	seg     *newrelic.Segment
	ownsTxn bool
}

// AddAttribute adds a key-value pair metadata to the method trace
func (t *MethodTracer) AddAttribute(key string, value interface{}) {
	if t == nil {
		return
	}

	t.seg.AddAttribute(key, value)
}

// AddAttributes adds a set of key-value pair metadata to the method trace
func (t *MethodTracer) AddAttributes(attributes map[string]interface{}) {
	if t == nil {
		return
	}

	for key, value := range attributes {
		t.seg.AddAttribute(key, value)
	}
}

// OnError observes an error within a method trace
func (t *MethodTracer) OnError(err error) {
	if t == nil || err == nil {
		return
	}

	t.txn.NoticeError(err)
}

// End completes the trace for the method call, along with the transaction if
// the tracer started it.
func (t *MethodTracer) End() {
	if t == nil {
		return
	}

	t.seg.End()
	if t.ownsTxn {
		t.txn.End()
	}
}
