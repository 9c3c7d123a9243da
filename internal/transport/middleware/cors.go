package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/focuslog-backend/internal/config"
)

// exposedHeaders are response headers browsers may read cross-origin.
const exposedHeaders = "X-Request-Id, Retry-After, X-RateLimit-Limit"

// CORS answers preflight requests for the configured origins and decorates
// regular responses with the allow headers. A "*" entry allows any origin;
// the request origin is echoed back so credentials keep working.
func CORS(cfg config.CORSConfig) Middleware {
	allowAny, origins := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if _, listed := origins[origin]; origin != "" && (allowAny || listed) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			// Plain OPTIONS without a preflight header is routed normally.
			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func parseOrigins(list string) (bool, map[string]struct{}) {
	set := make(map[string]struct{})
	allowAny := false
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			allowAny = true
		default:
			set[o] = struct{}{}
		}
	}
	return allowAny, set
}
