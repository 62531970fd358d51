package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/CU-CodingClub/Main/pkg/jwtx"
	"github.com/CU-CodingClub/Main/pkg/slogx"
)

// RequireUser verifies a user bearer token and puts the user id into the
// request context.
func RequireUser(v jwtx.Verifier) Middleware {
	return requirePrincipal(v, jwtx.KindUser, CtxKeyUserID)
}

// RequireAdmin verifies an admin bearer token and puts the admin id into the
// request context.
func RequireAdmin(v jwtx.Verifier) Middleware {
	return requirePrincipal(v, jwtx.KindAdmin, CtxKeyAdminID)
}

func requirePrincipal(v jwtx.Verifier, kind jwtx.Kind, key ctxKey) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				WriteError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			if err := claims.RequireKind(kind); err != nil {
				WriteError(w, http.StatusUnauthorized, "Invalid token type")
				return
			}

			ctx = context.WithValue(ctx, key, claims.PrincipalID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
