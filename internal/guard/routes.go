package guard

import "strings"

// Route namespace of the application. Role prefixes gate whole path subtrees;
// everything else is either public or common to all authenticated users.
const (
	RootPath      = "/"
	LoginPath     = "/login"
	SignupPath    = "/signup"
	DashboardPath = "/dashboard"
	AccountPath   = "/account"

	AdminPrefix    = "/admin"
	ResidentPrefix = "/resident"
	SecurityPrefix = "/security"
)

var publicPaths = map[string]struct{}{
	RootPath:   {},
	LoginPath:  {},
	SignupPath: {},
}

// IsPublic reports whether path is reachable without a principal.
func IsPublic(path string) bool {
	_, ok := publicPaths[path]
	return ok
}

// underPrefix reports whether path lies inside the given role prefix.
// "/residents" must not match "/resident", so the character after the prefix
// has to be a path separator (or nothing).
func underPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}
