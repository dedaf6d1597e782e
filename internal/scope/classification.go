// Package scope implements tenant isolation for every persisted entity type.
//
// The classification table below is the single source of truth for how each
// entity relates to its owning tenant. Root-scoped entities carry a tenant_id
// column and are filtered directly; relationship-scoped entities carry no
// tenant column and are filtered by following their required parent
// references down to a root-scoped ancestor. Do NOT add a redundant tenant_id
// column to a relationship-scoped table: it would be a second source of truth
// that can drift from the relationship.
//
// Every new entity type must be registered here; Predicate panics on
// unregistered entities so a missing registration fails loudly.
package scope

// Kind classifies how an entity type is bound to a tenant.
type Kind int

const (
	// Unscoped entities are visible regardless of tenant (only Tenant itself).
	Unscoped Kind = iota
	// RootScoped entities carry their own tenant_id column.
	RootScoped
	// RelationshipScoped entities reach their tenant through required parent
	// references.
	RelationshipScoped
)

// Entity identifies a persisted entity type. The value is the table name.
type Entity string

const (
	EntityTenant      Entity = "tenants"
	EntityVenue       Entity = "venues"
	EntityAct         Entity = "acts"
	EntityCustomer    Entity = "customers"
	EntityShow        Entity = "shows"
	EntityTicketOffer Entity = "ticket_offers"
	EntityTicketSale  Entity = "ticket_sales"
)

// Classification declares how one entity type resolves its owning tenant.
type Classification struct {
	Kind Kind

	// tenantPath is the SQL expression, relative to the entity's table, that
	// yields the owning tenant id. For root-scoped entities this is the
	// tenant_id column; for relationship-scoped entities it is an EXISTS
	// subquery template over the required parent chain (see filter.go).
	tenantColumn string
	parentChain  string
}

var classifications = map[Entity]Classification{
	EntityTenant: {Kind: Unscoped},

	EntityVenue:    {Kind: RootScoped, tenantColumn: "tenant_id"},
	EntityAct:      {Kind: RootScoped, tenantColumn: "tenant_id"},
	EntityCustomer: {Kind: RootScoped, tenantColumn: "tenant_id"},

	// Show scopes through its Venue.
	EntityShow: {
		Kind:        RelationshipScoped,
		parentChain: "SELECT 1 FROM venues sv WHERE sv.id = shows.venue_id AND sv.tenant_id = %s",
	},
	// TicketOffer scopes through Show -> Venue.
	EntityTicketOffer: {
		Kind:        RelationshipScoped,
		parentChain: "SELECT 1 FROM shows ss JOIN venues sv ON sv.id = ss.venue_id WHERE ss.id = ticket_offers.show_id AND sv.tenant_id = %s",
	},
	// TicketSale scopes through Show -> Venue.
	EntityTicketSale: {
		Kind:        RelationshipScoped,
		parentChain: "SELECT 1 FROM shows ss JOIN venues sv ON sv.id = ss.venue_id WHERE ss.id = ticket_sales.show_id AND sv.tenant_id = %s",
	},
}

// ClassificationOf returns the classification of the given entity type. It
// panics when the entity was never registered, which turns a forgotten
// registration into a startup failure instead of a silent isolation hole.
func ClassificationOf(e Entity) Classification {
	c, ok := classifications[e]
	if !ok {
		panic("scope: unregistered entity type " + string(e))
	}
	return c
}

// Entities returns every registered entity type.
func Entities() []Entity {
	out := make([]Entity, 0, len(classifications))
	for e := range classifications {
		out = append(out, e)
	}
	return out
}
