// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"
	"fmt"

	"github.com/taibuivan/postgrado/internal/platform/sec"
)

// Catalog is the set of roles present in the roles reference table.
//
// It is loaded once at startup and is read-only afterwards, so it is safe
// for concurrent use.
type Catalog struct {
	labels map[sec.Role]string
}

// LoadCatalog reads the roles table and maps every row onto a [sec.Role].
//
// A row whose code is not a declared role aborts loading, so a drifted
// reference table is caught before the server accepts traffic.
func LoadCatalog(ctx context.Context, store RoleStore) (*Catalog, error) {
	rows, err := store.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("identity_catalog_load_failed: %w", err)
	}
	return NewCatalog(rows)
}

// NewCatalog builds a catalog from already fetched rows.
func NewCatalog(rows []RoleRow) (*Catalog, error) {
	labels := make(map[sec.Role]string, len(rows))
	for _, row := range rows {
		role, ok := sec.ParseRole(row.Code)
		if !ok {
			return nil, fmt.Errorf("identity_catalog: unknown role code %d (%q)", row.Code, row.Label)
		}
		labels[role] = row.Label
	}
	return &Catalog{labels: labels}, nil
}

// Resolve maps a persisted role code onto a catalogued [sec.Role].
func (catalog *Catalog) Resolve(code int) (sec.Role, bool) {
	role, ok := sec.ParseRole(code)
	if !ok {
		return 0, false
	}
	_, present := catalog.labels[role]
	return role, present
}

// Label returns the human-readable name stored for the role.
func (catalog *Catalog) Label(role sec.Role) string {
	if label, ok := catalog.labels[role]; ok {
		return label
	}
	return role.String()
}
