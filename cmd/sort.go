/**************************************************************************************************
** Sort command implementation. Orders media files so that GoPro recordings split over several
** files come first and in capture order.
**************************************************************************************************/

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/majorfi/clipkit/pkg/fsutil"
	"github.com/majorfi/clipkit/pkg/gopro"
	"github.com/majorfi/clipkit/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Sort command configuration
var showGroups bool
var outFile string

func runSort(cmd *cobra.Command, args []string) {
	logger := loadEnv()
	if err := sortFiles(afero.NewOsFs(), cmd.OutOrStdout(), args, logger); err != nil {
		logger.Fatalf("Error sorting files: %v", err)
	}
}

/**************************************************************************************************
** Expands directories, groups the GoPro recordings and writes the ordered list to w and, when
** requested, to outFile.
**
** @param fs - Filesystem to read directories from and write outFile to
** @param w - Destination of the command output
** @param args - Paths, file URLs or directories
** @param logger - Logger instance for outputting status and errors
** @return error - Any error expanding directories or writing the result
**************************************************************************************************/
func sortFiles(fs afero.Fs, w io.Writer, args []string, logger *logrus.Logger) error {
	inputs := utils.RemoveEmptyStrings(args)
	if !noExpand {
		expanded, err := fsutil.ExpandDirectories(fs, inputs)
		if err != nil {
			return err
		}
		inputs = expanded
	}

	groups, rest := gopro.GroupFiles(inputs)
	sorted := gopro.Flatten(groups, rest)
	logger.Infof("Sorted %d files: %d GoPro recordings, %d other files", len(sorted), len(groups), len(rest))
	for _, group := range groups {
		logger.WithFields(logrus.Fields{
			"clip":  group.ClipKey,
			"files": len(group.Files),
		}).Debugf("\tGoPro recording")
	}
	if logger.IsLevelEnabled(logrus.TraceLevel) {
		utils.Pretty(logger.Out, groups)
	}

	if outFile != "" {
		if err := writeListFile(fs, outFile, sorted); err != nil {
			return err
		}
		logger.Infof("Wrote sorted list to %s", outFile)
	}

	if showGroups {
		return writeGroups(w, outputFormat, groups, rest)
	}
	return writeList(w, outputFormat, sorted)
}

/**************************************************************************************************
** Writes one path per line to path. The destination is probed first, the content is staged in
** a temporary file and moved into place; when the move is not possible (e.g. across devices)
** the content is written to the destination directly.
**
** @param fs - Filesystem to write to
** @param path - Destination file
** @param lines - Lines to write
** @return error - Any error probing, staging or writing
**************************************************************************************************/
func writeListFile(fs afero.Fs, path string, lines []string) error {
	existed, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if err := fsutil.CheckWritable(fs, path, !existed); err != nil {
		return err
	}

	data := []byte(strings.Join(lines, "\n") + "\n")
	tmp, err := fsutil.WritableTemporaryFile(fs, path, "clipkit-"+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = fs.Remove(tmpName)
		return fmt.Errorf("failed to write temporary file %s: %w", tmpName, err)
	}

	if err := fs.Rename(tmpName, path); err == nil {
		return nil
	}
	_ = fs.Remove(tmpName)
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
