package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/tarikh-backend/internal/observability"
)

// Metrics records request count and latency by route pattern. Requests that
// matched no route are labelled "unmatched" to keep label cardinality bounded.
func Metrics(m *observability.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)
			info, r := ensureInfo(r)

			next.ServeHTTP(sw, r)

			route := info.route
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTP(r.Method, route, strconv.Itoa(sw.status), time.Since(start))
		})
	}
}
