// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/taibuivan/postgrado/internal/platform/dberr"
	"github.com/taibuivan/postgrado/internal/platform/sec"
)

// memoryStore is an in-memory [Store] that counts writes.
type memoryStore struct {
	mu         sync.Mutex
	identities map[string]Identity
	logins     map[string]LoginRecord
	professors []ProfessorProfile
	roles      []RoleRow
	nextLogin  int64
	writes     int
	failCreate error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		identities: make(map[string]Identity),
		logins:     make(map[string]LoginRecord),
		roles: []RoleRow{
			{Code: 1, Label: "ADMINISTRADOR"},
			{Code: 2, Label: "ESTUDIANTE"},
			{Code: 3, Label: "PROFESOR"},
		},
	}
}

func (store *memoryStore) FindByCedula(_ context.Context, cedula string) (*Identity, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	identity, ok := store.identities[cedula]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &identity, nil
}

func (store *memoryStore) Create(_ context.Context, identity *Identity) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.failCreate != nil {
		return store.failCreate
	}
	if _, exists := store.identities[identity.Cedula]; exists {
		return errors.New("duplicate cedula")
	}
	store.writes++
	store.identities[identity.Cedula] = *identity
	return nil
}

func (store *memoryStore) Update(_ context.Context, identity *Identity) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.identities[identity.Cedula]; !exists {
		return dberr.ErrNotFound
	}
	store.writes++
	store.identities[identity.Cedula] = *identity
	return nil
}

func (store *memoryStore) ListByRoles(_ context.Context, codes []int) ([]*Identity, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	identities := make([]*Identity, 0)
	for _, identity := range store.identities {
		if len(codes) == 0 || slices.Contains(codes, identity.RoleCode) {
			identities = append(identities, &identity)
		}
	}
	slices.SortFunc(identities, func(a, b *Identity) int {
		switch {
		case a.Cedula < b.Cedula:
			return -1
		case a.Cedula > b.Cedula:
			return 1
		}
		return 0
	})
	return identities, nil
}

func (store *memoryStore) FindLoginByID(_ context.Context, id int64) (*LoginRecord, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, record := range store.logins {
		if record.ID == id {
			return &record, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (store *memoryStore) FindLoginByCedula(_ context.Context, cedula string) (*LoginRecord, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	record, ok := store.logins[cedula]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &record, nil
}

func (store *memoryStore) UpsertLogin(_ context.Context, cedula, secretHash string, role sec.Role) (*LoginRecord, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.writes++
	record, ok := store.logins[cedula]
	if !ok {
		store.nextLogin++
		record = LoginRecord{ID: store.nextLogin, Cedula: cedula}
	}
	record.SecretHash = secretHash
	record.Role = role
	store.logins[cedula] = record
	return &record, nil
}

func (store *memoryStore) CreateProfessor(_ context.Context, profile *ProfessorProfile) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.writes++
	profile.ID = int64(len(store.professors) + 1)
	store.professors = append(store.professors, *profile)
	return nil
}

func (store *memoryStore) ListProfessors(_ context.Context) ([]*ProfessorProfile, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	profiles := make([]*ProfessorProfile, 0, len(store.professors))
	for i := range store.professors {
		profile := store.professors[i]
		profiles = append(profiles, &profile)
	}
	return profiles, nil
}

func (store *memoryStore) ListRoles(_ context.Context) ([]RoleRow, error) {
	return store.roles, nil
}
