package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/pkg/ctxutil"
)

type reputationService interface {
	History(ctx context.Context, p domain.Principal, userID uuid.UUID, limit, offset int) ([]domain.PointAward, error)
	Badges(ctx context.Context) ([]domain.Badge, error)
	UserBadges(ctx context.Context, userID uuid.UUID) ([]domain.UserBadge, error)
	Leaderboard(ctx context.Context, n int) ([]domain.LeaderboardEntry, error)
}

// ReputationHandler serves points, badges and the leaderboard.
type ReputationHandler struct {
	svc reputationService
	log *slog.Logger
}

// NewReputationHandler creates a ReputationHandler.
func NewReputationHandler(svc reputationService, logger *slog.Logger) *ReputationHandler {
	return &ReputationHandler{svc: svc, log: logger.With("handler", "reputation")}
}

// MyPoints handles GET /me/points: the caller's award ledger.
func (h *ReputationHandler) MyPoints(w http.ResponseWriter, r *http.Request) {
	p := ctxutil.PrincipalFromCtx(r.Context())
	limit, offset, err := page(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	awards, err := h.svc.History(r.Context(), p, p.UserID, limit, offset)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[pointAwardResponse]{Items: newList(awards, toPointAwardResponse)})
}

// Badges handles GET /badges.
func (h *ReputationHandler) Badges(w http.ResponseWriter, r *http.Request) {
	badges, err := h.svc.Badges(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[badgeResponse]{Items: newList(badges, toBadgeResponse)})
}

// UserBadges handles GET /users/{id}/badges.
func (h *ReputationHandler) UserBadges(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	badges, err := h.svc.UserBadges(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[userBadgeResponse]{Items: newList(badges, toUserBadgeResponse)})
}

// Leaderboard handles GET /leaderboard?limit=.
func (h *ReputationHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "limit", 0)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.Leaderboard(r.Context(), n)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]leaderboardEntryResponse, 0, len(entries))
	for i, e := range entries {
		out = append(out, leaderboardEntryResponse{
			Rank:     i + 1,
			UserID:   e.UserID.String(),
			Username: e.Username,
			Points:   e.Points,
		})
	}
	writeJSON(w, http.StatusOK, listResponse[leaderboardEntryResponse]{Items: out})
}
