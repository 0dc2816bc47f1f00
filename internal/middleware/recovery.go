package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/onnwee/meteodaten/backend/internal/apierr"
	"github.com/onnwee/meteodaten/backend/internal/errorreporting"
	"github.com/onnwee/meteodaten/backend/internal/logger"
)

// RecoverWithSentry recovers from panics and reports them to Sentry
func RecoverWithSentry(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// The server relies on this sentinel to abort a response silently
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.ErrorContext(r.Context(), "Panic recovered",
				"error", rec,
				"stack", string(debug.Stack()),
				"method", r.Method,
				"path", r.URL.Path,
			)

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", rec)
			}
			errorreporting.CaptureRequestError(r, err, map[string]string{"panic": "true"})

			apierr.WriteErrorWithContext(w, r, apierr.SystemInternal(""))
		}()

		next.ServeHTTP(w, r)
	})
}
