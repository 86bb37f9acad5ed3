// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package petition

import "context"

// Repository defines the data access contract for petitions.
type Repository interface {
	// List returns one page of petitions matching filter, newest first,
	// and the total number of matches.
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Petition, int, error)
}
