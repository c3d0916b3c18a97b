package middlewares

import (
	"context"
	"errors"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/exceptions"
	"healthagent-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Authenticate accepts a request only when its bearer token was issued for the session named
// in the path. The session id is put on the context for the handlers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.BearerPrefix))
		if authHeader == "" || token == "" || token == authHeader {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "invalid_session_token", requestID, "medium",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		pathSessionID := chi.URLParam(r, constvars.URLParamSessionID)
		if pathSessionID != "" && pathSessionID != sessionID {
			utils.LogSecurityEvent(m.Log, "session_mismatch", requestID, "high",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionMismatch(errors.New("token issued for another session")))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
