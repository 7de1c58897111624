package domain

// Role is the closed set of role tags a session can carry. Behaviour is
// dispatched per tag at the request boundary, not via type inspection
// further down.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleVendor   Role = "vendor"
	RoleCustomer Role = "customer"
)

// precedence orders roles from most to least privileged. Used when a
// session carries more than one tag.
var precedence = []Role{RoleAdmin, RoleVendor, RoleCustomer}

// ResolveRole collapses a set of role tags into exactly one Role using the
// fixed precedence admin > vendor > customer. Unknown tags are ignored.
// An authenticated session with no recognised tag is a customer.
func ResolveRole(tags []string) Role {
	for _, want := range precedence {
		for _, tag := range tags {
			if Role(tag) == want {
				return want
			}
		}
	}
	return RoleCustomer
}

// Valid reports whether r is one of the known role tags.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleVendor, RoleCustomer:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
