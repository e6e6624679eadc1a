package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafeteria-app/utils"
)

// RequireRoles membatasi akses route ke daftar role yang diizinkan.
// Role diambil dari context yang di-set oleh AuthMiddleware.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			utils.RespondErrorCode(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}

		role, ok := roleInterface.(string)
		if !ok {
			utils.RespondErrorCode(c, http.StatusUnauthorized, errors.New("invalid role format"))
			c.Abort()
			return
		}

		if _, ok := allowedSet[role]; !ok {
			utils.RespondErrorCode(c, http.StatusForbidden, errors.New("you do not have permission"))
			c.Abort()
			return
		}

		c.Next()
	}
}
