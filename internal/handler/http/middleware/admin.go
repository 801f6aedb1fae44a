package middleware

import (
	"net/http"

	"github.com/staffclock/attendance-backend-go/internal/domain/user"
	"github.com/staffclock/attendance-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := RoleFromContext(r.Context())
		if !ok || role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
