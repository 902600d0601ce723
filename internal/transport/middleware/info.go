package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/tarikh-backend/internal/domain"
)

// requestInfo is filled in by inner layers and read by outer ones once the
// handler returns.
type requestInfo struct {
	principal domain.Principal
	route     string
}

type infoKey struct{}

func infoFromCtx(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(infoKey{}).(*requestInfo)
	return info
}

// ensureInfo returns the request's info holder, attaching a new one if no
// outer layer did.
func ensureInfo(r *http.Request) (*requestInfo, *http.Request) {
	if info := infoFromCtx(r.Context()); info != nil {
		return info, r
	}
	info := &requestInfo{}
	return info, r.WithContext(context.WithValue(r.Context(), infoKey{}, info))
}

// Route records the matched ServeMux pattern for logging and metrics.
// It must wrap the handler registered on the mux, where r.Pattern is set.
func Route(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info := infoFromCtx(r.Context()); info != nil {
			info.route = r.Pattern
		}
		next.ServeHTTP(w, r)
	})
}
