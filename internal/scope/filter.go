package scope

import "fmt"

// Predicate returns the tenant filter fragment for one entity type, with the
// scope parameter bound to the given positional argument. The argument is
// always tenant.Context.Param(): SQL NULL for the administrative scope, which
// makes the left disjunct true and disables filtering, or a tenant id, which
// narrows the query to that tenant's rows.
//
// Every repository query against a scoped entity must AND this fragment into
// its WHERE clause and append the scope parameter to its arguments; no read
// or write path may bypass it without explicitly holding the unscoped
// context.
func Predicate(e Entity, arg int) string {
	c := ClassificationOf(e)
	p := fmt.Sprintf("$%d", arg)

	switch c.Kind {
	case Unscoped:
		// Tenant rows are visible to every scope; keep the fragment shape so
		// call sites stay uniform.
		return "TRUE"
	case RootScoped:
		return fmt.Sprintf("(%s::bigint IS NULL OR %s.%s = %s)", p, e, c.tenantColumn, p)
	case RelationshipScoped:
		return fmt.Sprintf("(%s::bigint IS NULL OR EXISTS (%s))", p, fmt.Sprintf(c.parentChain, p))
	default:
		panic(fmt.Sprintf("scope: unknown kind %d for entity %s", c.Kind, e))
	}
}
