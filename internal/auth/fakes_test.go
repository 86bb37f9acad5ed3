// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/postgrado/internal/identity"
	"github.com/taibuivan/postgrado/internal/platform/dberr"
	"github.com/taibuivan/postgrado/internal/platform/sec"
)

const testSecret = "test-signing-secret"

// memoryIdentities is an in-memory [IdentityReader].
type memoryIdentities struct {
	identities map[string]*identity.Identity
	logins     map[int64]*identity.LoginRecord
	failLookup error
}

func newMemoryIdentities() *memoryIdentities {
	return &memoryIdentities{
		identities: make(map[string]*identity.Identity),
		logins:     make(map[int64]*identity.LoginRecord),
	}
}

// add registers an identity with a login record and returns the record ID.
func (store *memoryIdentities) add(t *testing.T, cedula, secret string, role sec.Role) int64 {
	t.Helper()

	hash, err := sec.HashSecret(secret)
	require.NoError(t, err)

	id := int64(len(store.logins) + 1)
	store.identities[cedula] = &identity.Identity{
		Cedula:     cedula,
		FirstName:  "NOMBRE " + cedula,
		LastName:   "APELLIDO",
		RoleCode:   role.Code(),
		SecretHash: hash,
	}
	store.logins[id] = &identity.LoginRecord{ID: id, Cedula: cedula, SecretHash: hash, Role: role}
	return id
}

func (store *memoryIdentities) FindLoginByID(_ context.Context, id int64) (*identity.LoginRecord, error) {
	if store.failLookup != nil {
		return nil, store.failLookup
	}
	record, ok := store.logins[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return record, nil
}

func (store *memoryIdentities) FindLoginByCedula(_ context.Context, cedula string) (*identity.LoginRecord, error) {
	for _, record := range store.logins {
		if record.Cedula == cedula {
			return record, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (store *memoryIdentities) FindByCedula(_ context.Context, cedula string) (*identity.Identity, error) {
	found, ok := store.identities[cedula]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return found, nil
}

func newTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	tokens, err := sec.NewTokenService(testSecret, "postgrado-test")
	require.NoError(t, err)
	return tokens
}

func newTestCatalog(t *testing.T) *identity.Catalog {
	t.Helper()
	catalog, err := identity.NewCatalog([]identity.RoleRow{
		{Code: 1, Label: "ADMINISTRADOR"},
		{Code: 2, Label: "ESTUDIANTE"},
		{Code: 3, Label: "PROFESOR"},
	})
	require.NoError(t, err)
	return catalog
}

var errDatabaseDown = errors.New("database down")
