// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package petition

// # Query Fields

const (
	FieldStatus = "status_solicitud"
)

// maxStatusFilters bounds the number of status values accepted in one query.
const maxStatusFilters = 10
