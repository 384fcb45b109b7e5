package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/tasksync/internal/adapters/http/dto"
)

// Recovery turns a handler panic into a logged error and, when nothing has
// been written yet, a 500 problem response. The panic value stays in the
// log. http.ErrAbortHandler is re-raised so net/http can drop the
// connection as it intends.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "handler panicked",
					slog.String("method", r.Method),
					slog.String("route", route(r)),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
				)
				if !rec.wroteHeader {
					dto.WriteErrorResponse(rec, r, fmt.Errorf("panic: %v", v))
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
