// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package filter is a metapackage for commands
// that filter gene trees.
package filter

import (
	"github.com/js-arias/command"
	"github.com/liqianghou2022/Eudicots/cmd/eudicots/filter/leaves"
	"github.com/liqianghou2022/Eudicots/cmd/eudicots/filter/orders"
	"github.com/liqianghou2022/Eudicots/cmd/eudicots/filter/support"
)

var Command = &command.Command{
	Usage: "filter <command> [<argument>...]",
	Short: "commands to filter gene trees",
}

func init() {
	Command.Add(leaves.Command)
	Command.Add(orders.Command)
	Command.Add(support.Command)
}
