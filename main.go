// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/tipl-labs/launchpad/cmd"
)

func main() {
	cmd.Execute()
}
