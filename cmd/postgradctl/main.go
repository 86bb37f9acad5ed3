// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command postgradctl is the operator tool of the postgraduate API.
//
// It reads DATABASE_URL, MIGRATION_PATH, JWT_SECRET, JWT_ISSUER and
// ACCESS_TOKEN_TTL from the environment.
package main

import "github.com/taibuivan/postgrado/internal/cli"

func main() {
	cli.Execute()
}
