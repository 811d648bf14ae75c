package utils

import (
	"net/url"
	"strings"
)

/**************************************************************************************************
** RemoveFileScheme turns a "file://" URL into its local path. Any other input is percent-decoded
** and returned; input that cannot be decoded is returned unchanged.
**
** @param raw - Path or URL as received from a drop, a playlist or the command line
** @return string - Local path when raw used the file scheme, decoded raw otherwise
**************************************************************************************************/
func RemoveFileScheme(raw string) string {
	if u, err := url.Parse(raw); err == nil && strings.EqualFold(u.Scheme, "file") {
		path := u.Path
		// file:///C:/clip.mp4 parses to "/C:/clip.mp4"
		if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
			path = path[1:]
		}
		return path
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

/**************************************************************************************************
** BaseName returns only the file name of an absolute path ("/a/b.mp4", "C:/a/b.mp4",
** "C:\a\b.mp4"). URIs and relative names are returned as they are.
**
** @param filePath - Path to shorten
** @return string - File name component or filePath itself
**************************************************************************************************/
func BaseName(filePath string) string {
	if strings.HasPrefix(filePath, "/") || isDrivePath(filePath) {
		return lastElement(filePath)
	}
	return filePath
}

/**************************************************************************************************
** NewFileRef splits an input path into the parts used to classify it. The stem stops at the
** first dot of the name while the extension starts after the last one, so "GOPR0012.x.MP4"
** has stem "GOPR0012" and extension "MP4".
**
** @param input - Path or URL as received
** @return TFileRef - Classification view of input
**************************************************************************************************/
func NewFileRef(input string) TFileRef {
	local := RemoveFileScheme(input)
	name := lastElement(local)

	stem := name
	if i := strings.IndexByte(name, '.'); i >= 0 {
		stem = name[:i]
	}
	ext := ""
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		ext = name[i+1:]
	}

	return TFileRef{
		Path:      input,
		LocalPath: local,
		Name:      name,
		Stem:      stem,
		Ext:       ext,
	}
}

func isDrivePath(s string) bool {
	return len(s) >= 3 && s[1] == ':' && (s[2] == '/' || s[2] == '\\')
}

func lastElement(s string) string {
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		return s[i+1:]
	}
	return s
}
