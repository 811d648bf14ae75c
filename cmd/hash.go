/**************************************************************************************************
** Hash command implementation. Fingerprints media files the way proxy and thumbnail caches key
** them.
**************************************************************************************************/

package main

import (
	"context"
	"io"

	"github.com/majorfi/clipkit/pkg/filehash"
	"github.com/majorfi/clipkit/pkg/fsutil"
	"github.com/majorfi/clipkit/pkg/utils"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func runHash(cmd *cobra.Command, args []string) {
	logger := loadEnv()
	if err := hashFiles(cmd.Context(), afero.NewOsFs(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, logger); err != nil {
		logger.Fatalf("Error hashing files: %v", err)
	}
}

/**************************************************************************************************
** Hashes every input with hashWorkers concurrent reads and writes one digest per file to w.
** Unreadable files are reported as warnings and listed with an empty digest.
**
** @param ctx - Cancellation context
** @param fs - Filesystem to read from
** @param w - Destination of the command output
** @param progressOut - Destination of the progress bar
** @param args - Paths, file URLs or directories
** @param logger - Logger instance for outputting status and errors
** @return error - Cancellation or output error
**************************************************************************************************/
func hashFiles(ctx context.Context, fs afero.Fs, w, progressOut io.Writer, args []string, logger *logrus.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	inputs := utils.RemoveEmptyStrings(args)
	if !noExpand {
		expanded, err := fsutil.ExpandDirectories(fs, inputs)
		if err != nil {
			return err
		}
		inputs = expanded
	}
	paths := make([]string, len(inputs))
	for i, input := range inputs {
		paths[i] = utils.RemoveFileScheme(input)
	}

	var onDone func(utils.THashResult)
	if !noProgress && len(paths) > 0 {
		bar := progressbar.NewOptions(len(paths),
			progressbar.OptionSetWriter(progressOut),
			progressbar.OptionSetDescription("Hashing files"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetRenderBlankState(true),
		)
		onDone = func(utils.THashResult) { _ = bar.Add(1) }
		defer bar.Finish()
	}

	hasher := filehash.NewHasher(fs, hashCacheSize)
	results, err := filehash.HashAll(ctx, hasher, paths, hashWorkers, onDone)
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			logger.Warnf("Hash unavailable for %s: %v", result.Path, result.Err)
			continue
		}
		logger.WithFields(logrus.Fields{"hash": result.Hash}).Debugf("\t%s", result.Path)
	}
	logger.Infof("Hashed %d files (%d unavailable) with %d workers", len(results)-failed, failed, hashWorkers)

	return writeHashes(w, outputFormat, results)
}
