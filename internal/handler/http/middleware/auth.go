package middleware

import (
	"errors"
	"net/http"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/auth"
	"github.com/cleansweep-app/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// accessClaims returns the claims of a verified access token. Missing tokens,
// undecodable claims and refresh tokens all fail.
func accessClaims(r *http.Request) (map[string]interface{}, error) {
	token, _, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(r.Context())
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
		return nil, auth.ErrInvalidToken
	}

	return claims, nil
}

// AuthRequired rejects requests whose token is missing, invalid or not an
// access token. Refresh tokens never pass.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			if _, err := accessClaims(r); err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					response.HandleError(w, err)
				} else {
					response.Unauthorized(w, err.Error())
				}
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
