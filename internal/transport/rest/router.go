package rest

import (
	"net/http"

	"github.com/heartmarshall/tarikh-backend/internal/transport/middleware"
)

// Handlers groups every handler mounted by NewRouter. Metrics may be nil.
type Handlers struct {
	Health      *HealthHandler
	Account     *AccountHandler
	Items       *ItemHandler
	Links       *LinkHandler
	Bookmarks   *BookmarkHandler
	Reputation  *ReputationHandler
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers the HTTP surface on a ServeMux. Each route is tagged
// with its pattern for the access log and request metrics.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.Route(fn))
	}

	handle("GET /live", h.Health.Live)
	handle("GET /ready", h.Health.Ready)
	handle("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET "+h.MetricsPath, middleware.Route(h.Metrics))
	}

	handle("POST /auth/register", h.Account.Register)
	handle("POST /auth/login", h.Account.Login)
	handle("GET /me", h.Account.Me)
	handle("GET /me/points", h.Reputation.MyPoints)

	handle("POST /items", h.Items.Create)
	handle("GET /items", h.Items.List)
	handle("GET /items/{id}", h.Items.Get)
	handle("PATCH /items/{id}", h.Items.Edit)
	handle("DELETE /items/{id}", h.Items.Delete)
	handle("POST /items/{id}/approve", h.Items.Approve)
	handle("POST /items/{id}/reject", h.Items.Reject)
	handle("GET /items/{id}/history", h.Items.History)
	handle("GET /moderation/queue", h.Items.Queue)

	handle("GET /items/{id}/links", h.Links.List)
	handle("POST /items/{id}/links", h.Links.Create)
	handle("DELETE /links/{id}", h.Links.Delete)
	handle("GET /references/{kind}/{id}", h.Links.Reference)

	handle("POST /bookmarks/toggle", h.Bookmarks.Toggle)
	handle("GET /bookmarks", h.Bookmarks.List)

	handle("GET /badges", h.Reputation.Badges)
	handle("GET /users/{id}/badges", h.Reputation.UserBadges)
	handle("GET /leaderboard", h.Reputation.Leaderboard)

	handle("GET /admin/users", h.Account.ListUsers)
	handle("PUT /admin/users/{id}/role", h.Account.ChangeRole)
	handle("DELETE /admin/users/{id}", h.Account.DeleteUser)

	return mux
}
