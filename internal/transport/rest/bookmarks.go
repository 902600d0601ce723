package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/pkg/ctxutil"
)

type bookmarkService interface {
	Toggle(ctx context.Context, p domain.Principal, kind domain.ContentKind, itemID uuid.UUID) (*domain.ToggleResult, error)
	List(ctx context.Context, p domain.Principal, kind *domain.ContentKind, limit, offset int) ([]domain.Bookmark, error)
}

// BookmarkHandler serves the caller's bookmarks.
type BookmarkHandler struct {
	svc bookmarkService
	log *slog.Logger
}

// NewBookmarkHandler creates a BookmarkHandler.
func NewBookmarkHandler(svc bookmarkService, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{svc: svc, log: logger.With("handler", "bookmark")}
}

type toggleRequest struct {
	Kind   string `json:"kind"`
	ItemID string `json:"itemId"`
}

type toggleResponse struct {
	Action string         `json:"action"`
	Award  *awardResponse `json:"award,omitempty"`
}

// Toggle handles POST /bookmarks/toggle.
func (h *BookmarkHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		writeServiceError(w, r, h.log, domain.NewValidationError("itemId", "must be a UUID"))
		return
	}

	res, err := h.svc.Toggle(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), domain.ContentKind(req.Kind), itemID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleResponse{Action: string(res.Action), Award: toAwardResponse(res.Award)})
}

// List handles GET /bookmarks?kind=&limit=&offset=.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var kind *domain.ContentKind
	if v := r.URL.Query().Get("kind"); v != "" {
		k := domain.ContentKind(v)
		kind = &k
	}

	bookmarks, err := h.svc.List(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), kind, limit, offset)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[bookmarkResponse]{Items: newList(bookmarks, toBookmarkResponse)})
}
