package rbac

import "go-smbops/internal/domain"

const (
	ResourceUsers    = "users"
	ResourceSettings = "settings"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionWrite  = "write"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// DefaultPolicies lists the Admin-only operations. Anything not listed is
// denied to every role.
func DefaultPolicies() [][]string {
	return [][]string{
		{domain.RoleAdmin, ResourceUsers, ActionRead},
		{domain.RoleAdmin, ResourceUsers, ActionCreate},
		{domain.RoleAdmin, ResourceSettings, ActionWrite},
	}
}
