package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/internal/service/account"
	"github.com/heartmarshall/tarikh-backend/pkg/ctxutil"
)

type accountService interface {
	Register(ctx context.Context, input account.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input account.LoginInput) (*account.LoginResult, error)
	Profile(ctx context.Context, p domain.Principal) (*domain.User, error)
	ListUsers(ctx context.Context, p domain.Principal, limit, offset int) ([]domain.User, int, error)
	ChangeRole(ctx context.Context, p domain.Principal, targetID uuid.UUID, role domain.Role) (*domain.User, error)
	DeleteAccount(ctx context.Context, p domain.Principal, targetID uuid.UUID) error
}

// AccountHandler serves registration, login and account administration.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresIn   int          `json:"expiresIn"`
	User        userResponse `json:"user"`
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

// Register handles POST /auth/register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	user, err := h.svc.Register(r.Context(), account.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

// Login handles POST /auth/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	res, err := h.svc.Login(r.Context(), account.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(res.ExpiresIn.Seconds()),
		User:        toUserResponse(res.User),
	})
}

// Me handles GET /me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Profile(r.Context(), ctxutil.PrincipalFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// ListUsers handles GET /admin/users.
func (h *AccountHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	users, total, err := h.svc.ListUsers(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), limit, offset)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[userResponse]{
		Items: newList(users, toUserResponse),
		Total: &total,
	})
}

// ChangeRole handles PUT /admin/users/{id}/role.
func (h *AccountHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	var req changeRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	user, err := h.svc.ChangeRole(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), id, domain.Role(req.Role))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /admin/users/{id}.
func (h *AccountHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteAccount(r.Context(), ctxutil.PrincipalFromCtx(r.Context()), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
