package filehash

import (
	"github.com/majorfi/clipkit/pkg/utils"
	"github.com/spf13/afero"
)

/**************************************************************************************************
** Hasher computes digests on a filesystem and remembers them per resource path, so that a clip
** referenced many times is only read once. Only successful digests are cached: a file that was
** unreadable is tried again on the next request. Safe for concurrent use.
**************************************************************************************************/
type Hasher struct {
	fs    afero.Fs
	cache *utils.LRUCache
}

/**************************************************************************************************
** NewHasher creates a Hasher reading from fs and caching up to cacheSize digests.
**
** @param fs - Filesystem to read from (afero.NewOsFs() in production)
** @param cacheSize - Maximum number of remembered digests
** @return *Hasher - Ready to use hasher
**************************************************************************************************/
func NewHasher(fs afero.Fs, cacheSize int) *Hasher {
	return &Hasher{
		fs:    fs,
		cache: utils.NewLRUCache(cacheSize),
	}
}

/**************************************************************************************************
** Hash returns the digest of path, from the cache when possible.
**
** @param path - File to fingerprint
** @return string - Digest, or "" if the file cannot be read
** @return error - Reason the file could not be hashed
**************************************************************************************************/
func (h *Hasher) Hash(path string) (string, error) {
	if hash, ok := h.cache.Get(path); ok {
		return hash, nil
	}
	hash, err := Compute(h.fs, path)
	if err != nil {
		return "", err
	}
	h.cache.Put(path, hash)
	return hash, nil
}

/**************************************************************************************************
** GetHash returns the digest identifying a clip. A digest already carried by src wins;
** otherwise the file returned by ResolveResource is hashed.
**
** @param src - Clip properties
** @return string - Digest, or "" if unavailable
**************************************************************************************************/
func (h *Hasher) GetHash(src utils.THashSource) string {
	if src.Hash != "" {
		return src.Hash
	}
	hash, _ := h.Hash(ResolveResource(src))
	return hash
}

/**************************************************************************************************
** ResolveResource picks the file whose content identifies a clip:
** - a proxy clip is identified by the original file it stands for,
** - a speed-changed clip by the file it warps,
** - a stabilised clip by its stabilisation data file,
** - anything else by its resource.
**
** @param src - Clip properties
** @return string - Path to hash
**************************************************************************************************/
func ResolveResource(src utils.THashSource) string {
	switch {
	case src.IsProxy && src.OriginalResource != "":
		return src.OriginalResource
	case src.Service == utils.ServiceTimewarp:
		return src.WarpResource
	case src.Service == utils.ServiceVidstab:
		return src.Filename
	default:
		return src.Resource
	}
}
