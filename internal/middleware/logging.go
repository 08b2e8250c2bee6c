package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, result code, duration and, for messages implementing
// slog.LogValuer, a summary of the request.
// Failures with a Connect code log at Warn, unclassified ones at Error.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			attrs := callAttrs(req, err, time.Since(start))
			var connectErr *connect.Error
			switch {
			case err == nil:
				slog.LogAttrs(ctx, slog.LevelInfo, "RPC ok", attrs...)
			case errors.As(err, &connectErr):
				attrs = append(attrs, slog.String("error", connectErr.Message()), slog.String("peer", req.Peer().Addr))
				slog.LogAttrs(ctx, slog.LevelWarn, "RPC error", attrs...)
			default:
				attrs = append(attrs, slog.Any("error", err), slog.String("peer", req.Peer().Addr))
				slog.LogAttrs(ctx, slog.LevelError, "RPC error", attrs...)
			}

			return resp, err
		}
	}
}

// callAttrs describes a finished call. The code matches the label
// MetricsInterceptor records.
func callAttrs(req connect.AnyRequest, err error, elapsed time.Duration) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("procedure", req.Spec().Procedure),
		slog.String("code", codeOf(err)),
		slog.Int64("duration_ms", elapsed.Milliseconds()),
	}
	if v, ok := req.Any().(slog.LogValuer); ok {
		attrs = append(attrs, slog.Any("request", v))
	}
	return attrs
}
