package middleware

import (
	"errors"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/utils"
)

// Gin context keys set by the auth and shop middleware
const (
	CtxUserID      = "user_id"
	CtxUserEmail   = "user_email"
	CtxUserRole    = "user_role"
	CtxPermissions = "user_permissions"
	CtxShopID      = "shop_id"
)

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", false
	}
	return token, true
}

// AuthMiddleware authenticates the Bearer access token and loads the caller
// identity into the gin context
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}
		token, ok := bearerToken(header)
		if !ok {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(token)
		if err != nil {
			message := apperror.ErrInvalidToken.Message
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = apperror.ErrTokenExpired.Message
			}
			response.Unauthorized(c, message)
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxUserRole, claims.Role)
		c.Set(CtxPermissions, claims.Permissions)
		c.Set(CtxShopID, claims.ShopID)
		c.Next()
	}
}

// RequirePermission aborts with 403 unless the token granted permission
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		granted := c.GetStringSlice(CtxPermissions)
		if !slices.Contains(granted, permission) {
			response.Forbidden(c, "You do not have permission to perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}
