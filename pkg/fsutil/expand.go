package fsutil

import (
	"fmt"
	"path/filepath"

	"github.com/majorfi/clipkit/pkg/utils"
	"github.com/spf13/afero"
)

/**************************************************************************************************
** ExpandDirectories replaces every input naming a directory by the readable regular files it
** directly contains, in name order. Other inputs, including ones that do not exist, are passed
** through verbatim.
**
** @param fs - Filesystem to inspect
** @param inputs - Paths or file URLs
** @return []string - Inputs with directories expanded
** @return error - Any error listing a directory
**************************************************************************************************/
func ExpandDirectories(fs afero.Fs, inputs []string) ([]string, error) {
	result := make([]string, 0, len(inputs))
	for _, input := range inputs {
		path := utils.RemoveFileScheme(input)
		if isDir, err := afero.IsDir(fs, path); err != nil || !isDir {
			result = append(result, input)
			continue
		}

		entries, err := afero.ReadDir(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", path, err)
		}
		for _, entry := range entries {
			if entry.Mode().IsRegular() && entry.Mode().Perm()&0o444 != 0 {
				result = append(result, filepath.Join(path, entry.Name()))
			}
		}
	}
	return result, nil
}
