// Package rbac decides what a signed-in admin may see and open.
//
// Menu visibility and route access are separate tables. They disagree for plans and catalogs:
// a manager sees both menu items but only the role-specific managers may open the pages.
package rbac

import (
	"slices"
	"strings"
)

const (
	SuperAdmin         = "super_admin"
	Manager            = "manager"
	Staff              = "staff"
	PlanUpgradeManager = "plan_upgrade_manager"
	CatalogManager     = "catalog_manager"
)

// Roles lists every role an admin account can hold.
var Roles = []string{SuperAdmin, Manager, Staff, PlanUpgradeManager, CatalogManager}

// HasRole reports whether role is one of roles. An empty role never matches.
func HasRole(role string, roles ...string) bool {
	if role == "" {
		return false
	}
	return slices.Contains(roles, role)
}

func IsSuperAdmin(role string) bool {
	return role == SuperAdmin
}

// ValidRole reports whether role is a known admin role.
func ValidRole(role string) bool {
	return slices.Contains(Roles, role)
}

// RoleLabel renders a role for the header: the first underscore becomes a space and the
// result is upper-cased, so "plan_upgrade_manager" reads "PLAN UPGRADE_MANAGER".
func RoleLabel(role string) string {
	return strings.ToUpper(strings.Replace(role, "_", " ", 1))
}

// MenuItem is one entry of the side navigation. Nil Roles means every signed-in admin.
type MenuItem struct {
	Text  string   `json:"text"`
	Path  string   `json:"path"`
	Roles []string `json:"roles,omitempty"`
}

var menu = []MenuItem{
	{Text: "Dashboard", Path: "/dashboard"},
	{Text: "Admins", Path: "/admins", Roles: []string{SuperAdmin}},
	{Text: "Employees", Path: "/employees"},
	{Text: "Employers", Path: "/employers"},
	{Text: "Jobs", Path: "/jobs"},
	{Text: "Coupons", Path: "/coupons"},
	{Text: "Commissions", Path: "/commissions"},
	{Text: "CV Requests", Path: "/cv-requests"},
	{Text: "Profile Photos", Path: "/profile-photos"},
	{Text: "Plans", Path: "/plans", Roles: []string{SuperAdmin, Manager}},
	{Text: "Orders & Payments", Path: "/orders", Roles: []string{SuperAdmin, Manager}},
	{Text: "Catalogs", Path: "/catalogs", Roles: []string{SuperAdmin, Manager}},
}

// Menu returns the items visible to role, in display order.
func Menu(role string) []MenuItem {
	out := make([]MenuItem, 0, len(menu))
	for _, item := range menu {
		if item.Roles == nil || HasRole(role, item.Roles...) {
			out = append(out, item)
		}
	}
	return out
}

var routes = map[string][]string{
	"/admins":   {SuperAdmin},
	"/coupons":  {SuperAdmin},
	"/plans":    {SuperAdmin, PlanUpgradeManager},
	"/catalogs": {SuperAdmin, CatalogManager},
}

// RouteRoles returns the roles allowed on the page at path, nil when any admin may open it.
// Sub-paths inherit the guard of their section.
func RouteRoles(path string) []string {
	section := "/" + strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]
	return routes[section]
}

// CanAccess reports whether a signed-in admin with role may open path.
func CanAccess(role, path string) bool {
	if role == "" {
		return false
	}
	allowed := RouteRoles(path)
	return allowed == nil || HasRole(role, allowed...)
}
