package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Ealanisln/vetify-api/internal/config"
	"github.com/Ealanisln/vetify-api/internal/httperr"
	"github.com/Ealanisln/vetify-api/internal/permissions"
)

const (
	ContextStaffID  = "staffID"
	ContextTenantID = "tenantID"
	ContextRole     = "staffRole"
)

// AuthMiddleware trusts the tenant, staff and role claims of an HMAC-signed
// token issued elsewhere.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a Bearer token.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Invalid token claims.")
			c.Abort()
			return
		}

		staffID, ok1 := claims["sub"].(float64)
		tenantID, ok2 := claims["tenantId"].(float64)
		roleClaim, _ := claims["role"].(string)
		role, ok3 := permissions.ParseRole(roleClaim)
		if !ok1 || !ok2 || !ok3 || staffID <= 0 || tenantID <= 0 {
			httperr.Unauthorized(c, "invalid_token_payload", "Token is missing tenant, staff or role.")
			c.Abort()
			return
		}

		c.Set(ContextStaffID, uint(staffID))
		c.Set(ContextTenantID, uint(tenantID))
		c.Set(ContextRole, role)

		c.Next()
	}
}

// RequireCapability rejects the request unless the caller's role grants c.
func RequireCapability(f permissions.Feature, a permissions.Action) gin.HandlerFunc {
	capability := permissions.Can(f, a)
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRole)
		r, _ := role.(permissions.Role)
		if !permissions.Allowed(r, capability) {
			httperr.Forbidden(c, "forbidden", "Your role cannot perform this action.")
			c.Abort()
			return
		}
		c.Next()
	}
}
