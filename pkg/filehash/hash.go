package filehash

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/majorfi/clipkit/pkg/utils"
	"github.com/spf13/afero"
)

/**************************************************************************************************
** Compute fingerprints the file at path. Files up to utils.HashFullReadLimit bytes are hashed
** entirely. Larger files are hashed over their first utils.HashSampleSize bytes followed by
** their last utils.HashSampleSize bytes. The digest is MD5 rendered as lowercase hex.
**
** A short read is not an error: whatever bytes were obtained are hashed.
**
** @param fs - Filesystem holding path
** @param path - File to fingerprint
** @return string - 32-character hex digest
** @return error - Any error opening, sizing or reading the file
**************************************************************************************************/
func Compute(fs afero.Fs, path string) (string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("failed to hash %s: is a directory", path)
	}

	hasher := md5.New()
	size := info.Size()
	if size > utils.HashFullReadLimit {
		if _, err := io.CopyN(hasher, file, utils.HashSampleSize); err != nil && err != io.EOF {
			return "", fmt.Errorf("failed to read head of %s: %w", path, err)
		}
		if _, err := file.Seek(size-utils.HashSampleSize, io.SeekStart); err != nil {
			return "", fmt.Errorf("failed to seek in %s: %w", path, err)
		}
	}
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

/**************************************************************************************************
** FileHash is Compute on the OS filesystem, reporting failure as an empty string. Callers treat
** an empty digest as "hash unavailable" and may try again later.
**
** @param path - File to fingerprint
** @return string - 32-character hex digest, or "" if the file cannot be read
**************************************************************************************************/
func FileHash(path string) string {
	hash, err := Compute(afero.NewOsFs(), path)
	if err != nil {
		return ""
	}
	return hash
}
