package gopro

import (
	"fmt"
	"testing"

	"github.com/majorfi/clipkit/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/************************************************************************************************
** Test cases for SortedFileList
************************************************************************************************/

func TestSortedFileList(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "chapters follow their first file, other files last",
			input:    []string{"clip.mov", "GP030012.MP4", "GOPR0012.MP4", "GP020012.MP4"},
			expected: []string{"GOPR0012.MP4", "GP020012.MP4", "GP030012.MP4", "clip.mov"},
		},
		{
			name:     "orphan chapter stays in place",
			input:    []string{"a.mov", "GP029999.MP4", "b.mov"},
			expected: []string{"a.mov", "GP029999.MP4", "b.mov"},
		},
		{
			name:     "no gopro files",
			input:    []string{"/b/z.mov", "/a/y.mp4", "x.wav"},
			expected: []string{"/b/z.mov", "/a/y.mp4", "x.wav"},
		},
		{
			name:     "matching is case-insensitive",
			input:    []string{"gp020012.mp4", "notes.txt", "gopr0012.mp4"},
			expected: []string{"gopr0012.mp4", "gp020012.mp4", "notes.txt"},
		},
		{
			name:     "HERO6+ first file is not duplicated",
			input:    []string{"GH030034.MP4", "GH020034.MP4", "intro.mov", "GH010034.MP4"},
			expected: []string{"GH010034.MP4", "GH020034.MP4", "GH030034.MP4", "intro.mov"},
		},
		{
			name:     "groups in first-seen clip order",
			input:    []string{"GOPR0002.MP4", "GOPR0001.MP4", "GP010001.MP4", "GP010002.MP4"},
			expected: []string{"GOPR0002.MP4", "GP010002.MP4", "GOPR0001.MP4", "GP010001.MP4"},
		},
		{
			name:     "directories are ignored for matching but used for sorting",
			input:    []string{"/b/GP020012.MP4", "/a/GOPR0012.MP4"},
			expected: []string{"/a/GOPR0012.MP4", "/b/GP020012.MP4"},
		},
		{
			name:     "file urls are returned verbatim",
			input:    []string{"file:///clips/GP020012.MP4", "file:///clips/other.mov", "file:///clips/GOPR0012.MP4"},
			expected: []string{"file:///clips/GOPR0012.MP4", "file:///clips/GP020012.MP4", "file:///clips/other.mov"},
		},
		{
			name:     "low resolution proxies join the recording",
			input:    []string{"GOPR0012.MP4", "GOPR0012.LRV", "GP020012.LRV"},
			expected: []string{"GOPR0012.LRV", "GOPR0012.MP4", "GP020012.LRV"},
		},
		{
			name:     "non-candidates are left alone",
			input:    []string{"GOPR012.MP4", "GOPR0012.THM", "GP02001.MP4"},
			expected: []string{"GOPR012.MP4", "GOPR0012.THM", "GP02001.MP4"},
		},
		{
			name:     "duplicate first files both stay in the group",
			input:    []string{"x.mov", "GOPR0012.MP4", "GOPR0012.MP4"},
			expected: []string{"GOPR0012.MP4", "GOPR0012.MP4", "x.mov"},
		},
		{
			name:     "sort is case-sensitive",
			input:    []string{"gp020012.MP4", "GOPR0012.MP4", "GP030012.MP4"},
			expected: []string{"GOPR0012.MP4", "GP030012.MP4", "gp020012.MP4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SortedFileList(tt.input))
		})
	}
}

func TestSortedFileListEmpty(t *testing.T) {
	assert.Empty(t, SortedFileList(nil))
	assert.Empty(t, SortedFileList([]string{}))
}

/************************************************************************************************
** Every input must come out exactly once, whatever the mix of names.
************************************************************************************************/
func TestSortedFileListCompleteness(t *testing.T) {
	prefixes := []string{"GOPR", "GP01", "GP02", "GH01", "GH02", "GS01", "GX01", "gopr", "gh02", "IMG_"}
	keys := []string{"0001", "0002", "00ab"}
	exts := []string{"MP4", "LRV", "360", "mov", "mp4"}

	var input []string
	for i, prefix := range prefixes {
		for j, key := range keys {
			for k, ext := range exts {
				name := fmt.Sprintf("/dir%d/%s%s.%s", (i+j+k)%3, prefix, key, ext)
				input = append(input, name)
				if (i+j+k)%7 == 0 {
					input = append(input, name)
				}
			}
		}
	}
	input = append(input, "file:///dir0/GP039999.MP4", "readme", "")

	output := SortedFileList(input)
	require.Len(t, output, len(input))
	assert.True(t, utils.AreArraysEqual(input, output), "output must be a permutation of the input")
}

func TestSortedFileListIdempotentWithoutGoPro(t *testing.T) {
	input := []string{"c.mov", "b.mov", "GP020001.MP4", "a.mov", "GOPR001.MP4"}
	assert.Equal(t, input, SortedFileList(input))
}

/************************************************************************************************
** Test cases for GroupFiles
************************************************************************************************/

func TestGroupFiles(t *testing.T) {
	groups, rest := GroupFiles([]string{
		"/card/GP020012.MP4",
		"/card/GOPR0012.MP4",
		"/card/GP020099.MP4",
		"/card/GH010034.MP4",
		"/card/GH020034.MP4",
		"/card/notes.txt",
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "0012", groups[0].ClipKey)
	assert.Equal(t, "0034", groups[1].ClipKey)

	paths := func(refs []utils.TFileRef) []string {
		result := make([]string, len(refs))
		for i, ref := range refs {
			result[i] = ref.Path
		}
		return result
	}
	assert.Equal(t, []string{"/card/GOPR0012.MP4", "/card/GP020012.MP4"}, paths(groups[0].Files))
	assert.Equal(t, []string{"/card/GH010034.MP4", "/card/GH020034.MP4"}, paths(groups[1].Files))
	assert.Equal(t, []string{"/card/GP020099.MP4", "/card/notes.txt"}, paths(rest))
}

func TestGroupFilesSortsByLocalPath(t *testing.T) {
	groups, rest := GroupFiles([]string{
		"file:///b/GP020012.MP4",
		"/a/GP030012.MP4",
		"file:///a/GOPR0012.MP4",
	})

	require.Len(t, groups, 1)
	assert.Empty(t, rest)
	require.Len(t, groups[0].Files, 3)
	assert.Equal(t, "/a/GOPR0012.MP4", groups[0].Files[0].LocalPath)
	assert.Equal(t, "/a/GP030012.MP4", groups[0].Files[1].LocalPath)
	assert.Equal(t, "/b/GP020012.MP4", groups[0].Files[2].LocalPath)
}
