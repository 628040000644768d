package httpapi

import (
	"context"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fpl-stats-api/internal/domain/player"
	"github.com/riskibarqy/fpl-stats-api/internal/platform/logging"
	"github.com/riskibarqy/fpl-stats-api/internal/usecase"
)

const readinessTimeout = 2 * time.Second

type Handler struct {
	playerService *usecase.PlayerService
	readiness     player.Pinger
	logger        *logging.Logger
	validator     *validator.Validate
}

// NewHandler wires the HTTP handlers. readiness may be nil, in which case
// /readyz always reports ready.
func NewHandler(
	playerService *usecase.PlayerService,
	readiness player.Pinger,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService: playerService,
		readiness:     readiness,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Readyz")
	defer span.End()

	if h.readiness != nil {
		pingCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
		defer cancel()
		if err := h.readiness.Ping(pingCtx); err != nil {
			h.logger.WarnContext(ctx, "readiness check failed", "error", err)
			writeError(ctx, w, crerr.Mark(crerr.Wrap(err, "ping store"), usecase.ErrDependencyUnavailable))
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return crerr.Wrapf(usecase.ErrInvalidInput, "validation failed: %v", err)
	}

	return nil
}
