package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/service/submission"
	"github.com/heartmarshall/tarikh-backend/pkg/ctxutil"
)

type submissionService interface {
	Create(ctx context.Context, p domain.Principal, input submission.CreateInput) (*submission.CreateResult, error)
	Get(ctx context.Context, p domain.Principal, itemID uuid.UUID) (*domain.ModeratedItem, error)
	List(ctx context.Context, p domain.Principal, input submission.ListInput) ([]domain.ModeratedItem, int, error)
	ListPending(ctx context.Context, p domain.Principal, kind *domain.ItemKind, limit, offset int) ([]domain.ModeratedItem, int, error)
	Edit(ctx context.Context, p domain.Principal, input submission.EditInput) (*domain.ModeratedItem, error)
	Delete(ctx context.Context, p domain.Principal, itemID uuid.UUID) error
	Approve(ctx context.Context, p domain.Principal, itemID uuid.UUID) (*domain.TransitionResult, error)
	Reject(ctx context.Context, p domain.Principal, itemID uuid.UUID) (*domain.TransitionResult, error)
	History(ctx context.Context, p domain.Principal, itemID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// ItemHandler serves submission, moderation and item reads.
type ItemHandler struct {
	svc submissionService
	log *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc submissionService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: logger.With("handler", "item")}
}

type createItemRequest struct {
	Kind string `json:"kind"`
	itemFieldsBody
}

type editItemRequest struct {
	Title       *string  `json:"title"`
	TitleAlt    *string  `json:"titleAlt"`
	Body        *string  `json:"body"`
	BodyAlt     *string  `json:"bodyAlt"`
	EventDate   *string  `json:"eventDate"`
	Category    *string  `json:"category"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Attribution *string  `json:"attribution"`

	ClearLocation bool `json:"clearLocation"`
}

type createItemResponse struct {
	Item  itemResponse   `json:"item"`
	Award *awardResponse `json:"award,omitempty"`
}

type transitionResponse struct {
	Item         itemResponse   `json:"item"`
	Transitioned bool           `json:"transitioned"`
	Award        *awardResponse `json:"award,omitempty"`
}

// Create handles POST /items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	res, err := h.svc.Create(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), submission.CreateInput{
		Kind: domain.ItemKind(req.Kind),
		Fields: domain.ItemFields{
			Title:       req.Title,
			TitleAlt:    req.TitleAlt,
			Body:        req.Body,
			BodyAlt:     req.BodyAlt,
			EventDate:   req.EventDate,
			Category:    domain.EventCategory(req.Category),
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			Attribution: req.Attribution,
		},
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, createItemResponse{
		Item:  toItemResponse(res.Item),
		Award: toAwardResponse(res.Award),
	})
}

// Get handles GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	item, err := h.svc.Get(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// List handles GET /items?kind=&status=&submitter=&limit=&offset=.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	input := submission.ListInput{Limit: limit, Offset: offset}
	if v := q.Get("kind"); v != "" {
		kind := domain.ItemKind(v)
		input.Kind = &kind
	}
	if v := q.Get("status"); v != "" {
		status := domain.ItemStatus(v)
		input.Status = &status
	}
	if v := q.Get("submitter"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeServiceError(w, r, h.log, domain.NewValidationError("submitter", "must be a UUID"))
			return
		}
		input.SubmitterID = &id
	}

	items, total, err := h.svc.List(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[itemResponse]{
		Items: newList(items, toItemResponse),
		Total: &total,
	})
}

// Queue handles GET /moderation/queue?kind=&limit=&offset=.
func (h *ItemHandler) Queue(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var kind *domain.ItemKind
	if v := r.URL.Query().Get("kind"); v != "" {
		k := domain.ItemKind(v)
		kind = &k
	}

	items, total, err := h.svc.ListPending(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), kind, limit, offset)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[itemResponse]{
		Items: newList(items, toItemResponse),
		Total: &total,
	})
}

// Edit handles PATCH /items/{id}.
func (h *ItemHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	var req editItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	input := submission.EditInput{
		ItemID:      id,
		Title:       req.Title,
		TitleAlt:    req.TitleAlt,
		Body:        req.Body,
		BodyAlt:     req.BodyAlt,
		EventDate:   req.EventDate,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Attribution: req.Attribution,

		ClearLocation: req.ClearLocation,
	}
	if req.Category != nil {
		c := domain.EventCategory(*req.Category)
		input.Category = &c
	}

	item, err := h.svc.Edit(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Delete handles DELETE /items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Approve handles POST /items/{id}/approve.
func (h *ItemHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Approve)
}

// Reject handles POST /items/{id}/reject.
func (h *ItemHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Reject)
}

// transition answers 200 whether or not the item moved; a repeated decision
// reports transitioned=false with the current state.
func (h *ItemHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, domain.Principal, uuid.UUID) (*domain.TransitionResult, error),
) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	res, err := op(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, transitionResponse{
		Item:         toItemResponse(res.Item),
		Transitioned: res.Transitioned,
		Award:        toAwardResponse(res.Award),
	})
}

// History handles GET /items/{id}/history?limit=.
func (h *ItemHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	records, err := h.svc.History(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), id, limit)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[auditRecordResponse]{Items: newList(records, toAuditRecordResponse)})
}
