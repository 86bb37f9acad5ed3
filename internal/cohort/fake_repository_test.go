// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cohort

import (
	"context"
	"sync"
)

// memoryRepository is an in-memory [Repository] that records insert attempts.
type memoryRepository struct {
	mu         sync.Mutex
	cohorts    map[string]Cohort
	attempts   []string
	failCreate error
	failExists error
}

func newMemoryRepository(codes ...string) *memoryRepository {
	repository := &memoryRepository{cohorts: make(map[string]Cohort)}
	for _, code := range codes {
		repository.cohorts[code] = Cohort{Code: code, Site: SiteBarcelona, ProgramType: ProgramFinance}
	}
	return repository
}

func (repository *memoryRepository) Exists(_ context.Context, code string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.failExists != nil {
		return false, repository.failExists
	}
	_, ok := repository.cohorts[code]
	return ok, nil
}

func (repository *memoryRepository) CreateIfAbsent(_ context.Context, cohort *Cohort) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.attempts = append(repository.attempts, cohort.Code)
	if repository.failCreate != nil {
		return false, repository.failCreate
	}
	if _, ok := repository.cohorts[cohort.Code]; ok {
		return false, nil
	}
	repository.cohorts[cohort.Code] = *cohort
	return true, nil
}

func (repository *memoryRepository) List(_ context.Context) ([]*Cohort, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var cohorts []*Cohort
	for _, stored := range repository.cohorts {
		cohort := stored
		cohorts = append(cohorts, &cohort)
	}
	return cohorts, nil
}
