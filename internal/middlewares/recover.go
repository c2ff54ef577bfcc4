package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// RecoverMiddleware turns a panic in a handler into a logged error and a
// generic 500 response. The panic value and stack trace go to the log only.
func RecoverMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Errorw("unhandled error",
					"request_id", RequestIDFromContext(r.Context()),
					"method", r.Method,
					"uri", r.RequestURI,
					"error", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
				)

				writeInternalError(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
