// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package payment

import "context"

// Repository defines the data access contract for payments.
type Repository interface {
	// List returns one page of payments, newest first, and the total count.
	List(ctx context.Context, limit, offset int) ([]*Payment, int, error)

	// UpdateStates applies every update atomically and returns the
	// references that matched no payment.
	UpdateStates(ctx context.Context, updates []StateUpdate) ([]int, error)
}
