package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fpl-stats-api/internal/metrics"
	"github.com/riskibarqy/fpl-stats-api/internal/platform/logging"
)

type RouterOptions struct {
	CORSAllowedOrigins []string
	Metrics            metrics.Metrics
	// MetricsHandler serves /metrics when non-nil.
	MetricsHandler http.Handler
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.MetricsHandler)
	registerPlayerRoutes(mux, handler)

	return RequestID(
		RequestTracing(
			RequestLogging(logger,
				RequestMetrics(opts.Metrics,
					CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux))))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
