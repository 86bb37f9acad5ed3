// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migrations embeds the SQL schema so the binaries migrate without a
// checkout of this directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
