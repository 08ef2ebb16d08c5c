package middleware

import (
	"net/http"

	"github.com/wiralabs/campaign-api/apperr"
)

// Recoverer converts panics into the standard error envelope instead of a
// bare 500 with an empty body. Nil dereferences classify as NullReference;
// anything else falls back to Internal.
func Recoverer(responder *apperr.Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				responder.RespondError(w, apperr.RequestInfoFrom(r), apperr.FromPanic(v))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
