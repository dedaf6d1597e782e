// Package tenant carries the per-request tenant scope through the service
// and repository layers. A scope is either bound to one tenant or explicitly
// unscoped (administrative). The zero value is invalid so a scope can never
// come into existence by omission.
package tenant

import "errors"

// Scope errors
var (
	ErrNoTenant = errors.New("no tenant scope in context")
)

type kind int

const (
	kindInvalid kind = iota
	kindScoped
	kindUnscoped
)

// Context is the tenant scope of the current operation.
type Context struct {
	kind     kind
	tenantID int64
}

// Scoped returns a Context bound to the given tenant.
func Scoped(tenantID int64) Context {
	return Context{kind: kindScoped, tenantID: tenantID}
}

// Unscoped returns the administrative Context that sees every tenant.
// It must only be reachable from admin-authenticated request paths.
func Unscoped() Context {
	return Context{kind: kindUnscoped}
}

// IsValid reports whether the Context was constructed via Scoped or Unscoped.
func (c Context) IsValid() bool {
	return c.kind != kindInvalid
}

// IsUnscoped reports whether the Context is the administrative scope.
func (c Context) IsUnscoped() bool {
	return c.kind == kindUnscoped
}

// TenantID returns the bound tenant id. ok is false for the unscoped and
// invalid variants.
func (c Context) TenantID() (int64, bool) {
	if c.kind != kindScoped {
		return 0, false
	}
	return c.tenantID, true
}

// Param returns the value bound to the scope placeholder of a scoped query:
// the tenant id for a scoped Context, SQL NULL for the unscoped one. The
// invalid zero value panics rather than degrade into the unscoped NULL, which
// would silently query across tenants.
func (c Context) Param() interface{} {
	switch c.kind {
	case kindScoped:
		return c.tenantID
	case kindUnscoped:
		return nil
	}
	panic("tenant: Param called on an invalid scope")
}
