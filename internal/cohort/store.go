// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cohort

import "context"

// Repository defines the data access contract for cohorts.
type Repository interface {
	// Exists reports whether a cohort with code is stored.
	Exists(ctx context.Context, code string) (bool, error)

	// CreateIfAbsent inserts the cohort unless its code is taken.
	// It reports false, with no error, when the code already exists.
	CreateIfAbsent(ctx context.Context, cohort *Cohort) (bool, error)

	// List returns every cohort, newest start date first.
	List(ctx context.Context) ([]*Cohort, error)
}
