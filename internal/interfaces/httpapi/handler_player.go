package httpapi

import (
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fpl-stats-api/internal/domain/player"
	"github.com/riskibarqy/fpl-stats-api/internal/usecase"
)

type getPlayerRequest struct {
	PlayerID string `validate:"required,mongodb"`
}

// ListPlayers never rejects its query string: malformed paging, sorting or
// price values fall back to defaults.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query := player.ParseQuery(r.URL.Query())
	page, err := h.playerService.ListPlayers(ctx, query)
	if err != nil {
		h.logError(r, "list players failed", err,
			"page", query.Pagination.Page,
			"limit", query.Pagination.Limit,
			"sort_by", query.Sort.Field,
		)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerPageToDTO(page))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	// object ids are hex; accept either case
	req := getPlayerRequest{PlayerID: strings.ToLower(strings.TrimSpace(r.PathValue("playerID")))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	doc, err := h.playerService.GetPlayerByID(ctx, req.PlayerID)
	if err != nil {
		h.logError(r, "get player failed", err, "player_id", req.PlayerID)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toPlayer(doc))
}

// logError logs client errors at warn and everything else at error.
func (h *Handler) logError(r *http.Request, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if crerr.Is(err, usecase.ErrInvalidInput) || crerr.Is(err, usecase.ErrNotFound) {
		h.logger.WarnContext(r.Context(), msg, args...)
		return
	}
	h.logger.ErrorContext(r.Context(), msg, args...)
}
