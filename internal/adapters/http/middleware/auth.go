package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/tasksync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasksync/internal/platform/auth"
	"github.com/jsamuelsen11/tasksync/internal/platform/logging"
)

// Auth returns middleware that requires a valid bearer token. The verified
// principal is stored in the request context and added to the request
// logger as user_id. Requests without a usable token get a 401 problem
// response and never reach next.
func Auth(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := tokens.FromAuthorizationHeader(r.Header.Get("Authorization"))
			if err != nil {
				logging.FromContext(r.Context()).DebugContext(r.Context(), "rejected request",
					slog.String("path", r.URL.Path),
					slog.Any("error", err),
				)
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx := auth.WithPrincipal(r.Context(), p)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(slog.Int64("user_id", p.UserID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
