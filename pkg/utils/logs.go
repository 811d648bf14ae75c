package utils

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

// Console colours used by the CLI text output.
var (
	ColorHeader = color.New(color.FgMagenta).Add(color.Bold).SprintFunc()
	ColorPath   = color.New(color.FgCyan).SprintFunc()
	ColorHash   = color.New(color.FgGreen).SprintFunc()
	ColorWarn   = color.New(color.FgYellow).Add(color.Bold).SprintFunc()
	colorRule   = color.New(color.FgYellow).SprintFunc()
)

var prettyConfig = spew.ConfigState{
	Indent:                  "    ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

/**************************************************************************************************
** Pretty disassembles variables and writes their structure and values to w, between two rules.
** Used to dump intermediate results at trace level.
**
** @param w - Destination writer
** @param variable - Values to dump
**************************************************************************************************/
func Pretty(w io.Writer, variable ...interface{}) {
	fmt.Fprint(w, colorRule("----------------------------------\n"))
	for _, each := range variable {
		prettyConfig.Fdump(w, each)
	}
	fmt.Fprint(w, colorRule("----------------------------------\n"))
}
