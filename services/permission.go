package services

import (
	"venue-booking/middleware"
	"venue-booking/models/user"

	"github.com/gofiber/fiber/v2"
)

// PermissionService evaluates role predicates per request. Ownership checks
// live here so controllers never compare role strings directly; route-level
// role gates live in middleware.RequireRoles.
type PermissionService struct{}

func NewPermissionService() *PermissionService {
	return &PermissionService{}
}

// CanManageVenue reports whether the caller may mutate the given venue. The
// platform admin may manage any venue; an administrator only their own.
func (ps *PermissionService) CanManageVenue(c *fiber.Ctx, venueCreatedBy uint) bool {
	role, ok := middleware.CurrentUserRole(c)
	if !ok {
		return false
	}

	switch role {
	case user.RoleAdmin:
		return true
	case user.RoleAdministrator:
		userID, ok := middleware.CurrentUserID(c)
		return ok && userID == venueCreatedBy
	default:
		return false
	}
}
