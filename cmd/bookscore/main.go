// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command bookscore scores YAML fixtures offline and mints development tokens.
package main

import "github.com/taibuivan/folio/internal/cli"

// version is set via ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
