package utils

/**************************************************************************************************
** GoProStemLength is the exact number of characters a GoPro file stem must have to be
** considered for grouping (e.g. "GOPR0012", "GH020012").
**************************************************************************************************/
const GoProStemLength = 8

/**************************************************************************************************
** GoProFirstFilePrefixes lists the 4-character stem prefixes identifying the first segment of a
** multi-file GoPro recording. Matching is case-insensitive, entries are stored upper-case.
**************************************************************************************************/
var GoProFirstFilePrefixes = map[string]struct{}{
	"GOPR": {},
	"GH01": {},
	"GS01": {},
}

/**************************************************************************************************
** GoProContinuationPrefixes lists the 2-character stem prefixes of the continuation segments
** (chapters) of a GoPro recording. This is looser than the first-file table: "GH01..." matches
** both.
**************************************************************************************************/
var GoProContinuationPrefixes = map[string]struct{}{
	"GP": {},
	"GH": {},
	"GS": {},
}

/**************************************************************************************************
** GoProExtensions lists the file extensions (without dot, upper-case) produced by GoPro cameras
** that take part in grouping.
**************************************************************************************************/
var GoProExtensions = map[string]struct{}{
	"MP4": {},
	"LRV": {},
	"360": {},
}

/**************************************************************************************************
** Partial hashing bounds. Files strictly larger than HashFullReadLimit are fingerprinted from
** their first and last HashSampleSize bytes only. Changing these values changes every digest
** already stored by callers.
**************************************************************************************************/
const (
	HashSampleSize    int64 = 1000000
	HashFullReadLimit int64 = 2 * HashSampleSize
)

/**************************************************************************************************
** Defaults for the CLI configuration.
**************************************************************************************************/
const (
	DefaultOutputFormat    = "text"
	DefaultHashCacheSize   = 1000
	DefaultDecimalPoint    = "."
	DefaultTempFilePattern = "clipkit.*"
)

// OutputFormats are the accepted values of --output / OUTPUT_FORMAT.
var OutputFormats = []string{"text", "json", "yaml"}

/**************************************************************************************************
** Media service names that keep the hashed file somewhere else than in their "resource".
**************************************************************************************************/
const (
	ServiceTimewarp = "timewarp"
	ServiceVidstab  = "vidstab"
)
