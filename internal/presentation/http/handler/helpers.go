package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/application/service"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/presentation/http/middleware"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/sangkips/shopledger-api/pkg/pagination"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		return uuid.Nil
	}
	id, _ := v.(uuid.UUID)
	return id
}

// GetUserRole extracts the caller's role from the Gin context
func GetUserRole(c *gin.Context) enum.UserRole {
	return enum.UserRole(c.GetString(middleware.CtxUserRole))
}

// actorFrom builds the service-layer caller. The token's shop is kept even for
// administrators so services can tell whose shop the caller belongs to.
func actorFrom(c *gin.Context) service.Actor {
	actor := service.Actor{
		UserID: GetUserID(c),
		Role:   GetUserRole(c),
	}
	if actor.Role != enum.RoleSuperAdmin {
		actor.ShopID = middleware.GetShopID(c)
	}
	return actor
}

// scope returns the caller and the shop the request acts on
func scope(c *gin.Context) (service.Actor, uuid.UUID) {
	return actorFrom(c), middleware.GetShopID(c)
}

// paramUUID parses a path parameter as a UUID
func paramUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.NewBadRequestError("Invalid " + name + " format")
	}
	return id, nil
}

// queryDate reads an optional YYYY-MM-DD query parameter
func queryDate(c *gin.Context, name string) (*bizdate.Date, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := bizdate.Parse(raw)
	if err != nil {
		return nil, apperror.NewFieldError(name, "Date must be formatted as YYYY-MM-DD")
	}
	return &d, nil
}

// requiredDate is queryDate for parameters that must be present
func requiredDate(c *gin.Context, name string) (bizdate.Date, error) {
	d, err := queryDate(c, name)
	if err != nil {
		return bizdate.Date{}, err
	}
	if d == nil {
		return bizdate.Date{}, apperror.NewFieldError(name, name+" is required")
	}
	return *d, nil
}

func queryPagination(c *gin.Context) *pagination.PaginationParams {
	return pagination.Parse(c.Query("page"), c.Query("per_page"))
}
