/**************************************************************************************************
** Main entry point for the clipkit CLI application. This tool orders media files so that GoPro
** recordings split over several files stay together, and fingerprints media files for proxy
** and thumbnail caches.
**************************************************************************************************/

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

/**************************************************************************************************
** Application entry point. Builds the command tree and executes it with a context cancelled on
** SIGINT/SIGTERM.
**************************************************************************************************/
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := CreateRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

/**************************************************************************************************
** CreateRootCommand sets up the CLI command structure using Cobra, including all available
** commands and their associated flags.
**
** @return *cobra.Command - Root command
**************************************************************************************************/
func CreateRootCommand() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "clipkit",
		Short: "Media clip utilities",
		Long:  "Order GoPro multi-file recordings, fingerprint media files and normalise decimal separators.",
	}
	bindFlags(rootCmd)

	var sortCmd = &cobra.Command{
		Use:   "sort [paths...]",
		Short: "Order files with GoPro recordings grouped",
		Long:  "Print the given files with the segments of each GoPro recording grouped first, in capture order, followed by every other file in its original order.",
		Run:   runSort,
	}
	sortCmd.Flags().BoolVar(&showGroups, "groups", false, "Print the recordings and the other files separately")
	sortCmd.Flags().StringVar(&outFile, "out", "", "Also write the sorted list to this file")

	var hashCmd = &cobra.Command{
		Use:   "hash [paths...]",
		Short: "Fingerprint media files",
		Long:  "Print the MD5 fingerprint of each file, computed over the whole file up to 2,000,000 bytes and over its first and last 1,000,000 bytes beyond.",
		Run:   runHash,
	}

	var numericCmd = &cobra.Command{
		Use:   "numeric [values...]",
		Short: "Normalise decimal separators",
		Long:  "Rewrite the decimal separators of numeric values to the configured decimal point.",
		Run:   runNumeric,
	}
	numericCmd.Flags().BoolVar(&anySeparator, "any", false, "Convert separators in any value, not only numeric ones")

	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(numericCmd)
	return rootCmd
}

/**************************************************************************************************
** bindFlags declares the persistent flags shared by every command. Flags win over the
** environment variables named in their help.
**
** @param rootCmd - Root command
**************************************************************************************************/
func bindFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "", "Output format: text, json or yaml (or set OUTPUT_FORMAT env var)")
	rootCmd.PersistentFlags().IntVar(&hashWorkers, "workers", 0, "Files hashed concurrently (or set HASH_WORKERS env var)")
	rootCmd.PersistentFlags().IntVar(&hashCacheSize, "cache-size", 0, "Digests remembered per run (or set HASH_CACHE_SIZE env var)")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "Hide the progress bar (or set NO_PROGRESS=true)")
	rootCmd.PersistentFlags().BoolVar(&noExpand, "no-expand", false, "Do not replace directories by the files they contain")
	rootCmd.PersistentFlags().StringVar(&decimalPoint, "decimal-point", "", "Decimal point to convert to (or set DECIMAL_POINT env var)")
}
