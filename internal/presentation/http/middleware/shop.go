package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/response"
)

// ShopIDHeader lets a platform administrator pick the shop a request acts on
const ShopIDHeader = "X-Shop-ID"

// ShopMiddleware resolves the shop every shop-scoped request acts on.
// Shop staff always act on the shop in their token; SUPER_ADMIN must name one
// with the X-Shop-ID header, and the shop must exist.
func ShopMiddleware(shopRepo repository.ShopRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(CtxUserRole)
		if role != enum.RoleSuperAdmin.String() {
			if GetShopID(c) == uuid.Nil {
				response.Forbidden(c, "Account is not attached to a shop")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		header := c.GetHeader(ShopIDHeader)
		if header == "" {
			response.BadRequest(c, "X-Shop-ID header is required")
			c.Abort()
			return
		}
		shopID, err := uuid.Parse(header)
		if err != nil {
			response.BadRequest(c, "Invalid X-Shop-ID header")
			c.Abort()
			return
		}

		shop, err := shopRepo.GetByID(c.Request.Context(), shopID)
		if err != nil {
			log.Printf("Error: resolving shop %s: %v", shopID, err)
			response.InternalServerError(c, "Failed to resolve shop")
			c.Abort()
			return
		}
		if shop == nil {
			response.NotFound(c, "Shop not found")
			c.Abort()
			return
		}

		c.Set(CtxShopID, shop.ID)
		c.Next()
	}
}

// GetShopID retrieves the resolved shop ID from gin context
func GetShopID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(CtxShopID)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
