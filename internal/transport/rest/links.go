package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/service/linkgraph"
	"github.com/heartmarshall/tarikh-backend/pkg/ctxutil"
)

type linkService interface {
	Link(ctx context.Context, p domain.Principal, input linkgraph.LinkInput) (*domain.LinkResult, error)
	Unlink(ctx context.Context, p domain.Principal, linkID uuid.UUID) error
	ListLinks(ctx context.Context, p domain.Principal, eventID uuid.UUID) ([]domain.ContentLink, error)
	Reference(ctx context.Context, kind domain.ReferenceKind, id uuid.UUID) (*domain.ReferenceItem, error)
}

// LinkHandler serves event-to-reference links and reference lookups.
type LinkHandler struct {
	svc linkService
	log *slog.Logger
}

// NewLinkHandler creates a LinkHandler.
func NewLinkHandler(svc linkService, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{svc: svc, log: logger.With("handler", "link")}
}

type linkRequest struct {
	Kind     string `json:"kind"`
	LinkedID string `json:"linkedId"`
}

type linkResultResponse struct {
	Link    linkResponse `json:"link"`
	Created bool         `json:"created"`
}

// List handles GET /items/{id}/links.
func (h *LinkHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	links, err := h.svc.ListLinks(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[linkResponse]{Items: newList(links, toLinkResponse)})
}

// Create handles POST /items/{id}/links. An existing link answers 200 with
// created=false; a new one answers 201.
func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	var req linkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	linkedID, err := uuid.Parse(req.LinkedID)
	if err != nil {
		writeServiceError(w, r, h.log, domain.NewValidationError("linkedId", "must be a UUID"))
		return
	}

	res, err := h.svc.Link(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), linkgraph.LinkInput{
		EventID:  eventID,
		Kind:     domain.ReferenceKind(req.Kind),
		LinkedID: linkedID,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, linkResultResponse{Link: toLinkResponse(res.Link), Created: res.Created})
}

// Delete handles DELETE /links/{id}.
func (h *LinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.Unlink(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reference handles GET /references/{kind}/{id}.
func (h *LinkHandler) Reference(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	ref, err := h.svc.Reference(r.Context(), domain.ReferenceKind(r.PathValue("kind")), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReferenceResponse(ref))
}
