package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-bloglist/internal/utils"
	"github.com/rs/zerolog"
)

// userExtractor is the second stage of the authentication chain. It
// verifies the token left by [Handler.tokenExtractor] and stores the
// resolved claims under [utils.UserCtxKey]. Verification failures are
// rendered by the error mapper, so an invalid signature ("invalid token")
// stays distinguishable from a token without a user ("Unauthorized").
func (h *Handler) userExtractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenString, ok := utils.GetTokenFromContext(ctx)
		if !ok {
			writeError(w, r, ErrUnauthorized)
			return
		}

		claims, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", claims.ID)
		})

		ctx = context.WithValue(ctx, utils.UserCtxKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
