package middleware

import (
	"net/http"
	"strings"
)

func CORS(allowedOrigins, allowedMethods, allowedHeaders string) func(http.Handler) http.Handler {
	origins := strings.Split(allowedOrigins, ",")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			for _, o := range origins {
				o = strings.TrimSpace(o)
				if o == "*" || o == origin {
					if origin != "" {
						w.Header().Set("Access-Control-Allow-Origin", origin)
					} else if o == "*" {
						w.Header().Set("Access-Control-Allow-Origin", "*")
					}
					break
				}
			}

			w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
			w.Header().Set("Access-Control-Max-Age", "3600")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
