package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/majorfi/clipkit/pkg/utils"
	"github.com/spf13/afero"
)

// ErrNotWritable is returned when a destination file cannot be written.
var ErrNotWritable = errors.New("file is not writable")

/**************************************************************************************************
** CheckWritable probes a destination by opening it for append and writing nothing to it. Empty
** paths and URIs are not probed. With remove set, the file is deleted after a successful probe.
**
** @param fs - Filesystem holding path
** @param path - Destination to probe
** @param remove - Delete the file after probing
** @return error - ErrNotWritable wrapped with the file name, nil when writable
**************************************************************************************************/
func CheckWritable(fs afero.Fs, path string, remove bool) error {
	if path == "" || strings.Contains(path, "://") {
		return nil
	}

	file, err := fs.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotWritable, filepath.Base(path), err)
	}
	_, err = file.Write([]byte{})
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotWritable, filepath.Base(path), err)
	}

	if remove {
		_ = fs.Remove(path)
	}
	return nil
}

/**************************************************************************************************
** WritableTemporaryFile creates a temporary file to stage a write to filePath. The system
** temporary directory is tried first; when it is not usable the file is created next to
** filePath instead.
**
** @param fs - Filesystem to create the file on
** @param filePath - Final destination, already known to be writable
** @param pattern - Temporary file name pattern ("*" is replaced), utils.DefaultTempFilePattern when empty
** @return afero.File - Open temporary file, the caller closes and removes it
** @return error - Error creating the file in both locations
**************************************************************************************************/
func WritableTemporaryFile(fs afero.Fs, filePath, pattern string) (afero.File, error) {
	if pattern == "" {
		pattern = utils.DefaultTempFilePattern
	}

	if tmp, err := afero.TempFile(fs, os.TempDir(), pattern); err == nil {
		if _, err := tmp.Write([]byte{}); err == nil {
			return tmp, nil
		}
		tmp.Close()
		_ = fs.Remove(tmp.Name())
	}

	tmp, err := afero.TempFile(fs, filepath.Dir(filePath), pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file for %s: %w", filePath, err)
	}
	return tmp, nil
}
