package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"empress-backend/utils"
)

// Recover converts handler panics into the generic 500 envelope. The
// panic value and stack are logged server-side only.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered on %s %s: %v\n%s", r.Method, r.URL.Path, err, debug.Stack())
				utils.ServerResponse(w, http.StatusInternalServerError, "Internal server error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
