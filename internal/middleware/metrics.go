package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/internal/metrics"
)

// MetricsInterceptor returns a Connect interceptor that counts every RPC call
// by procedure and result code, and times it.
func MetricsInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			m.ObserveRPC(req.Spec().Procedure, codeOf(err), time.Since(start))
			return resp, err
		}
	}
}

// codeOf returns the Connect code name for err, "ok" on success.
func codeOf(err error) string {
	if err == nil {
		return "ok"
	}
	return connect.CodeOf(err).String()
}
