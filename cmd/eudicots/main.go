// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Eudicots is a tool to filter, prune,
// and extract polyploidy statistics
// from gene trees in Newick format.
package main

import (
	"github.com/js-arias/command"
	"github.com/liqianghou2022/Eudicots/cmd/eudicots/calibrate"
	"github.com/liqianghou2022/Eudicots/cmd/eudicots/filter"
	"github.com/liqianghou2022/Eudicots/cmd/eudicots/list"
	"github.com/liqianghou2022/Eudicots/cmd/eudicots/prunecmd"
	"github.com/liqianghou2022/Eudicots/cmd/eudicots/stat"
)

var app = &command.Command{
	Usage: "eudicots <command> [<argument>...]",
	Short: "a tool for gene tree statistics of whole genome polyploidies",
}

func init() {
	app.Add(calibrate.Command)
	app.Add(filter.Command)
	app.Add(list.Command)
	app.Add(prunecmd.Command)
	app.Add(stat.Command)
}

func main() {
	app.Main()
}
