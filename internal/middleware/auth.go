package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/techted89/redtedcasino/internal/model"
	"github.com/techted89/redtedcasino/pkg/resp"
	"github.com/techted89/redtedcasino/pkg/token"
)

type claimsKey struct{}

type errorResponse struct {
	Message string `json:"message"`
}

// Auth requires a valid bearer access token and stores its claims in the
// request context.
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				resp.WriteJSONResponse(w, http.StatusUnauthorized, errorResponse{Message: "Unauthorized: Token is missing"})
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			if tokenStr == header {
				resp.WriteJSONResponse(w, http.StatusUnauthorized, errorResponse{Message: "Unauthorized: Token is missing"})
				return
			}

			claims, err := token.VerifyToken(tokenStr, secretKey)
			if err != nil {
				resp.WriteJSONResponse(w, http.StatusForbidden, errorResponse{Message: "Forbidden: Token is invalid or expired"})
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly rejects authenticated requests whose token lacks the admin flag.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || !claims.IsAdmin {
			resp.WriteJSONResponse(w, http.StatusForbidden, errorResponse{Message: "Forbidden: Admin access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext returns the access token claims stored by Auth.
func ClaimsFromContext(ctx context.Context) (*model.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*model.UserClaims)
	return claims, ok
}
