package middleware

import (
	"net/http"
	"strings"
)

// CaseInsensitivePrefix rewrites any casing of prefix at the start of the
// request path to prefix itself, so "/USERS" and "/Users/3" route like
// "/users" and "/users/3". Paths that merely start with the same letters,
// such as "/usersx", are left alone.
func CaseInsensitivePrefix(prefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := r.URL.Path
			if len(p) >= len(prefix) &&
				p[:len(prefix)] != prefix &&
				strings.EqualFold(p[:len(prefix)], prefix) &&
				(len(p) == len(prefix) || p[len(prefix)] == '/') {
				r2 := r.Clone(r.Context())
				r2.URL.Path = prefix + p[len(prefix):]
				r2.URL.RawPath = ""
				r = r2
			}
			next.ServeHTTP(w, r)
		})
	}
}
