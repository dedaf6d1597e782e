package repository

import (
	"os"
	"strings"
	"testing"
)

// loadSchema parses the initial migration into a table -> column-set map so
// the queries in this package can be checked against the DDL they run on.
func loadSchema(t *testing.T) map[string]map[string]bool {
	t.Helper()
	raw, err := os.ReadFile("../../migrations/001_init.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	tables := make(map[string]map[string]bool)
	var current map[string]bool
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "CREATE TABLE "):
			name := strings.TrimSuffix(strings.TrimPrefix(line, "CREATE TABLE "), " (")
			current = make(map[string]bool)
			tables[name] = current
		case current == nil:
		case line == "" || strings.HasPrefix(line, "--"):
		case strings.HasPrefix(line, ");"):
			current = nil
		case strings.HasPrefix(line, "CONSTRAINT ") || strings.HasPrefix(line, "CHECK "):
		default:
			if fields := strings.Fields(line); len(fields) > 0 {
				current[fields[0]] = true
			}
		}
	}
	return tables
}

// assertColumns checks every column in a comma separated list against the
// parsed DDL. Qualified names resolve against their own table, so joined
// projection columns are checked too.
func assertColumns(t *testing.T, tables map[string]map[string]bool, defaultTable, list string) {
	t.Helper()
	for _, col := range strings.Split(list, ",") {
		col = strings.TrimSpace(col)
		if col == "" {
			continue
		}
		table := defaultTable
		if i := strings.IndexByte(col, '.'); i >= 0 {
			table = col[:i]
			col = col[i+1:]
		}
		cols, ok := tables[table]
		if !ok {
			t.Fatalf("table %q referenced by queries is missing from the migration", table)
		}
		if !cols[col] {
			t.Errorf("%s.%s is referenced by queries but missing from the migration", table, col)
		}
	}
}

func TestSelectedColumnsExistInSchema(t *testing.T) {
	tables := loadSchema(t)

	assertColumns(t, tables, "tenants", tenantColumns)
	assertColumns(t, tables, "venues", venueColumns)
	assertColumns(t, tables, "acts", actColumns)
	assertColumns(t, tables, "customers", customerColumns)
	assertColumns(t, tables, "shows", showColumns)
	assertColumns(t, tables, "ticket_offers", offerColumns)
	assertColumns(t, tables, "ticket_sales", saleColumns)
}

// The insert lists live inline in each Create method, so they are pinned here
// verbatim. A mismatch means either the migration or a Create query changed
// without the other.
func TestInsertedColumnsExistInSchema(t *testing.T) {
	tables := loadSchema(t)

	inserts := map[string]string{
		"tenants": "external_id, name, slug, is_active, created_at, updated_at",
		"venues":  "external_id, tenant_id, name, address, latitude, longitude, seating_capacity, description, created_at, updated_at",
		"acts":    "external_id, tenant_id, name, created_at, updated_at",
		"customers": "external_id, tenant_id, name, " +
			"billing_street, billing_city, billing_state, billing_postal_code, billing_country, " +
			"shipping_street, shipping_city, shipping_state, shipping_postal_code, shipping_country, " +
			"created_at, updated_at",
		"shows":         "external_id, venue_id, act_id, ticket_count, start_time, created_at, updated_at",
		"ticket_offers": "external_id, show_id, name, price, ticket_count, created_at, updated_at",
		"ticket_sales":  "external_id, show_id, quantity, created_at, updated_at",
	}
	for table, list := range inserts {
		assertColumns(t, tables, table, list)
	}
}
