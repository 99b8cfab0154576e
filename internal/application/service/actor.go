package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
)

// Actor is the authenticated caller of a service operation.
// ShopID is uuid.Nil for platform administrators.
type Actor struct {
	UserID uuid.UUID
	Role   enum.UserRole
	ShopID uuid.UUID
}

// CanAccessShop reports whether the actor may read or write shopID's data
func (a Actor) CanAccessShop(shopID uuid.UUID) bool {
	if a.Role == enum.RoleSuperAdmin {
		return true
	}
	return a.ShopID != uuid.Nil && a.ShopID == shopID
}

// authorizeShop is the tenant check every shop-scoped operation runs first
func authorizeShop(actor Actor, shopID uuid.UUID) error {
	if shopID == uuid.Nil {
		return apperror.NewBadRequestError("Shop context required")
	}
	if !actor.CanAccessShop(shopID) {
		log.Printf("Denied: user %s (%s) attempted to access shop %s", actor.UserID, actor.Role, shopID)
		return apperror.NewForbiddenError("You do not have access to this shop")
	}
	return nil
}

// requireOwner allows shop owners and platform administrators
func requireOwner(actor Actor, action string) error {
	if actor.Role == enum.RoleShopOwner || actor.Role == enum.RoleSuperAdmin {
		return nil
	}
	log.Printf("Denied: user %s (%s) attempted to %s", actor.UserID, actor.Role, action)
	return apperror.NewForbiddenError("Only the shop owner can " + action)
}

// Clock returns the current instant in the shop's operating locale
type Clock func() time.Time

// SystemClock reads the wall clock in loc
func SystemClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// Today is the current business date
func (c Clock) Today() bizdate.Date {
	return bizdate.Of(c())
}
