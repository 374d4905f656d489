package middleware

import (
	"errors"
	"net/http"
	"strings"

	"hotel-booking-backend/auth"
	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const principalKey = "principal"

// RequireAuth parses the Bearer token and resolves the acting principal. For
// user tokens the admin flag is read from the user row so role changes apply
// without reissuing tokens.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			utils.JSONError(c, http.StatusUnauthorized, "missing or malformed authorization header")
			c.Abort()
			return
		}

		claims, err := auth.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		var p auth.Principal
		switch claims.Role {
		case auth.RoleUser:
			var user models.User
			if err := db.First(&user, claims.Sub).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
				} else {
					utils.JSONError(c, http.StatusInternalServerError, "failed to resolve principal")
				}
				c.Abort()
				return
			}
			p.UserID = user.ID
			p.Admin = user.IsAdmin

			// A user with a linked customer profile acts as that customer.
			var customer models.Customer
			if err := db.Where("user_id = ?", user.ID).First(&customer).Error; err == nil {
				p.CustomerID = customer.ID
			}
		case auth.RoleCustomer:
			var customer models.Customer
			if err := db.First(&customer, claims.Sub).Error; err != nil {
				utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
				c.Abort()
				return
			}
			p.CustomerID = customer.ID
		default:
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireAdmin gates a route on the resolved principal's admin flag. Must run
// after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if !p.IsAdmin() {
			utils.JSONError(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the principal set by RequireAuth, zero-valued when the
// route is unauthenticated.
func GetPrincipal(c *gin.Context) auth.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok2 := v.(auth.Principal); ok2 {
			return p
		}
	}
	return auth.Principal{}
}
