package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"botanica/pkg/platform/httputil"
	"botanica/pkg/requestcontext"

	dErrors "botanica/pkg/domain-errors"
)

// SubjectValidator verifies a bearer token and returns its subject.
type SubjectValidator interface {
	ValidateSubject(tokenString string) (string, error)
}

// RequireCurator rejects requests without a valid curator bearer token and
// stores the token subject in the request context.
func RequireCurator(validator SubjectValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Missing or invalid Authorization header"))
				return
			}

			subject, err := validator.ValidateSubject(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithCurator(ctx, subject)))
		})
	}
}
