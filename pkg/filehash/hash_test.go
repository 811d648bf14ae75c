package filehash

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/majorfi/clipkit/pkg/utils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/************************************************************************************************
** Test helper functions
************************************************************************************************/

func patternBytes(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}
	return data
}

func md5Hex(parts ...[]byte) string {
	h := md5.New()
	for _, part := range parts {
		h.Write(part)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeFile(t *testing.T, fs afero.Fs, path string, data []byte) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, data, 0o644))
}

/************************************************************************************************
** Test cases for Compute
************************************************************************************************/

func TestComputeSmallFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/clips/a.mp4", []byte("hello"))

	hash, err := Compute(fs, "/clips/a.mp4")
	require.NoError(t, err)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", hash)
	assert.Len(t, hash, 32)
}

func TestComputeEmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/empty", nil)

	hash, err := Compute(fs, "/empty")
	require.NoError(t, err)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", hash)
}

func TestComputeThresholdBoundary(t *testing.T) {
	sample := int(utils.HashSampleSize)
	limit := int(utils.HashFullReadLimit)

	t.Run("file at the limit is hashed in full", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		data := patternBytes(limit)
		writeFile(t, fs, "/limit", data)

		hash, err := Compute(fs, "/limit")
		require.NoError(t, err)
		assert.Equal(t, md5Hex(data), hash)
	})

	t.Run("file above the limit is hashed from head and tail", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		data := patternBytes(limit + 1)
		writeFile(t, fs, "/above", data)

		hash, err := Compute(fs, "/above")
		require.NoError(t, err)
		assert.Equal(t, md5Hex(data[:sample], data[len(data)-sample:]), hash)
		assert.NotEqual(t, md5Hex(data), hash)
	})

	t.Run("middle bytes of a large file are ignored", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		data := patternBytes(limit + 10)
		writeFile(t, fs, "/original", data)

		changed := append([]byte(nil), data...)
		changed[sample+4] ^= 0xFF
		writeFile(t, fs, "/changed", changed)

		original, err := Compute(fs, "/original")
		require.NoError(t, err)
		modified, err := Compute(fs, "/changed")
		require.NoError(t, err)
		assert.Equal(t, original, modified)
	})

	t.Run("head and tail bytes of a large file count", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		data := patternBytes(limit + 10)
		writeFile(t, fs, "/original", data)

		changed := append([]byte(nil), data...)
		changed[len(changed)-1] ^= 0xFF
		writeFile(t, fs, "/changed", changed)

		original, err := Compute(fs, "/original")
		require.NoError(t, err)
		modified, err := Compute(fs, "/changed")
		require.NoError(t, err)
		assert.NotEqual(t, original, modified)
	})
}

func TestComputeDeterministic(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/clip", patternBytes(3000000))

	first, err := Compute(fs, "/clip")
	require.NoError(t, err)
	second, err := Compute(fs, "/clip")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/clips", 0o755))

	_, err := Compute(fs, "/missing.mp4")
	assert.Error(t, err)

	_, err = Compute(fs, "/clips")
	assert.Error(t, err)
}

/************************************************************************************************
** Test cases for FileHash
************************************************************************************************/

func TestFileHash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "GOPR0012.MP4")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", FileHash(path))
}

func TestFileHashMissingFile(t *testing.T) {
	assert.Equal(t, "", FileHash(filepath.Join(t.TempDir(), "missing.mp4")))
}
