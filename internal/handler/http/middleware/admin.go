package middleware

import (
	"net/http"

	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/auth"
	"github.com/cleansweep-app/timeclock-backend-go/internal/domain/user"
	"github.com/cleansweep-app/timeclock-backend-go/internal/handler/http/response"
)

// AdminOnly requires the admin role on an active account.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := accessClaims(r)
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		isActive, ok := claims["is_active"].(bool)
		if !ok || !isActive {
			response.HandleError(w, user.ErrUserInactive)
			return
		}

		next.ServeHTTP(w, r)
	})
}
