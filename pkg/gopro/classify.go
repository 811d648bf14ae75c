package gopro

import (
	"strings"
	"unicode/utf8"

	"github.com/majorfi/clipkit/pkg/utils"
)

/**************************************************************************************************
** Classification describes how a file takes part in GoPro grouping. First and Continuation can
** both be true (e.g. "GH010012.MP4"): the continuation prefix table is looser than the
** first-file one.
**************************************************************************************************/
type Classification struct {
	Candidate    bool   // Stem of 8 characters with a GoPro extension
	First        bool   // First segment of a recording
	Continuation bool   // Chapter of a recording
	ClipKey      string // Characters 5-8 of the stem, upper-cased
}

/**************************************************************************************************
** Classify matches the file name of ref against the GoPro naming tables. Matching is
** case-insensitive and ignores the directory. Files that are not candidates get a zero
** Classification.
**
** @param ref - File to classify
** @return Classification - Flags and clip key for ref
**************************************************************************************************/
func Classify(ref utils.TFileRef) Classification {
	if utf8.RuneCountInString(ref.Stem) != utils.GoProStemLength {
		return Classification{}
	}
	if _, ok := utils.GoProExtensions[strings.ToUpper(ref.Ext)]; !ok {
		return Classification{}
	}

	upper := []rune(strings.ToUpper(ref.Stem))
	_, first := utils.GoProFirstFilePrefixes[string(upper[:4])]
	_, continuation := utils.GoProContinuationPrefixes[string(upper[:2])]

	return Classification{
		Candidate:    true,
		First:        first,
		Continuation: continuation,
		ClipKey:      string(upper[4:]),
	}
}
