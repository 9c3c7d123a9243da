package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/focuslog-backend/pkg/ctxutil"
)

// ClientIP resolves the caller address and stores it on the context.
// Forwarding headers are honoured only when trustProxy is set.
func ClientIP(trustProxy bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := remoteHost(r.RemoteAddr)
			if trustProxy {
				if fwd := forwardedFor(r); fwd != "" {
					ip = fwd
				}
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientIP(r.Context(), ip)))
		})
	}
}

func forwardedFor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	return strings.TrimSpace(r.Header.Get("X-Real-Ip"))
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
