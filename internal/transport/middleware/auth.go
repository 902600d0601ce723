package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/tarikh-backend/internal/domain"
	"github.com/heartmarshall/tarikh-backend/pkg/ctxutil"
)

type principalResolver interface {
	Resolve(ctx context.Context, token string) (domain.Principal, error)
}

// Auth resolves the bearer token into a principal and stores it in the
// request context. Requests without a token proceed as anonymous; a token
// that does not resolve is rejected with 401.
func Auth(resolver principalResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				ctx := ctxutil.WithPrincipal(r.Context(), domain.Anonymous())
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			p, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					writeError(w, http.StatusUnauthorized, "invalid or expired token")
					return
				}
				logger.ErrorContext(r.Context(), "resolve principal", slog.String("error", err.Error()))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if info := infoFromCtx(r.Context()); info != nil {
				info.principal = p
			}
			ctx := ctxutil.WithPrincipal(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
