package v1

import "github.com/zenstudio/booking-service/internal/core/domain"

// Authorize is the owner-or-admin check: a principal may act on a user
// resource if it is their own account or they hold the admin flag. Denial is
// a distinct outcome from "not found" — callers answer 403, never 404.
func Authorize(principal *domain.Principal, target *domain.User) bool {
	if principal == nil || target == nil {
		return false
	}
	return principal.Admin || principal.Email == target.Email
}
