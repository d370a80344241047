package keeper

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fairswap-labs/fairswap/x/fairswap/types"
)

const tracerName = "github.com/fairswap-labs/fairswap/x/fairswap"

// startSpan opens a span for a keeper operation. The span's child context is
// dropped; keeper code keeps using the caller's sdk context.
func startSpan(ctx context.Context, op string, id types.PoolID) trace.Span {
	_, span := otel.Tracer(tracerName).Start(ctx, "fairswap."+op,
		trace.WithAttributes(
			attribute.String("fairswap.pool", id.String()),
		),
	)
	return span
}

// endSpan records err (if any) and closes the span.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
