/**************************************************************************************************
** Numeric command implementation. Normalises decimal separators typed in another locale.
**************************************************************************************************/

package main

import (
	"io"
	"unicode/utf8"

	"github.com/majorfi/clipkit/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Numeric command configuration
var anySeparator bool

func runNumeric(cmd *cobra.Command, args []string) {
	logger := loadEnv()
	if err := convertValues(cmd.OutOrStdout(), args, logger); err != nil {
		logger.Fatalf("Error converting values: %v", err)
	}
}

/**************************************************************************************************
** Rewrites decimal separators of every value to the configured decimal point. Without
** anySeparator only numeric values are touched; with it any value not already using the decimal
** point is converted, keeping spaces.
**
** @param w - Destination of the command output
** @param args - Values to convert
** @param logger - Logger instance for outputting status
** @return error - Output error
**************************************************************************************************/
func convertValues(w io.Writer, args []string, logger *logrus.Logger) error {
	point, _ := utf8.DecodeRuneInString(decimalPoint)

	values := make([]numericOutput, 0, len(args))
	for _, arg := range args {
		var converted string
		var changed bool
		if anySeparator {
			converted, changed = utils.ConvertDecimalPoints(arg, point)
		} else {
			converted, changed = utils.ConvertNumericString(arg, point)
		}
		if changed {
			logger.Debugf("Converted '%s' to '%s'", arg, converted)
		}
		values = append(values, numericOutput{Input: arg, Output: converted, Changed: changed})
	}

	return writeNumeric(w, outputFormat, values)
}
