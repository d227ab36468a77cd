// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stat is a metapackage for commands
// that extract statistics from gene trees.
package stat

import (
	"github.com/js-arias/command"
	"github.com/liqianghou2022/Eudicots/cmd/eudicots/stat/support"
	"github.com/liqianghou2022/Eudicots/cmd/eudicots/stat/wgd"
	"github.com/liqianghou2022/Eudicots/cmd/eudicots/stat/wgt"
)

var Command = &command.Command{
	Usage: "stat <command> [<argument>...]",
	Short: "commands for gene tree statistics",
}

func init() {
	Command.Add(support.Command)
	Command.Add(wgd.Command)
	Command.Add(wgt.Command)
}
