// Package guard decides route reachability for the current principal.
//
// Evaluate is a pure function over (principal, path): no network, no shared
// state, no caching. The view layer calls it on every navigation, so a
// principal change (logout, account activation) takes effect on the very
// next screen switch. Unauthorized navigation is a routing decision here,
// never an error.
package guard

import "github.com/societyhub/societyhub/models"

// Decision is the outcome of evaluating one navigation attempt.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Allow is the decision that lets the navigation proceed.
var Allow = Decision{Allowed: true}

// Redirect builds a deny decision that sends the user to target instead.
func Redirect(target string) Decision {
	return Decision{RedirectTo: target}
}

// Evaluate returns the routing decision for principal requesting path.
// A nil principal means unauthenticated.
//
// Rules, in order:
//   - public paths are always reachable;
//   - without a principal, every protected path redirects to /login;
//   - a role may enter its own prefix but never another role's prefix;
//   - a RESIDENT whose account is not ACTIVE is confined to the common
//     dashboard and account pages; the resident prefix redirects to the
//     dashboard rather than to login; the session is valid, the account
//     just isn't approved yet;
//   - an unknown role falls through to redirect-to-login, never to allow.
func Evaluate(principal *models.Principal, path string) Decision {
	if IsPublic(path) {
		return Allow
	}
	if principal == nil {
		return Redirect(LoginPath)
	}

	switch principal.Role {
	case models.RoleAdmin:
		if underPrefix(path, ResidentPrefix) || underPrefix(path, SecurityPrefix) {
			return Redirect(LoginPath)
		}
		return Allow

	case models.RoleSecurity:
		if underPrefix(path, AdminPrefix) || underPrefix(path, ResidentPrefix) {
			return Redirect(LoginPath)
		}
		return Allow

	case models.RoleResident:
		if underPrefix(path, AdminPrefix) || underPrefix(path, SecurityPrefix) {
			return Redirect(LoginPath)
		}
		if principal.Status != models.StatusActive {
			if path == DashboardPath || path == AccountPath {
				return Allow
			}
			return Redirect(DashboardPath)
		}
		return Allow

	default:
		return Redirect(LoginPath)
	}
}

// HomePath returns the landing route for a principal after login. Pending
// and rejected residents land on the common dashboard.
func HomePath(principal *models.Principal) string {
	if principal == nil {
		return LoginPath
	}

	switch principal.Role {
	case models.RoleAdmin:
		return AdminPrefix + "/dashboard"
	case models.RoleSecurity:
		return SecurityPrefix + "/dashboard"
	case models.RoleResident:
		if principal.Status == models.StatusActive {
			return ResidentPrefix + "/dashboard"
		}
		return DashboardPath
	default:
		return LoginPath
	}
}
