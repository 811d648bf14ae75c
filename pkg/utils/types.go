package utils

/**************************************************************************************************
** TFileRef is a path-like input together with the pieces of its file name used for
** classification. Path keeps the caller's representation verbatim (it may still carry a
** "file://" scheme), LocalPath is the normalised filesystem path.
**************************************************************************************************/
type TFileRef struct {
	Path      string `json:"path" yaml:"path"`           // Input exactly as received
	LocalPath string `json:"localPath" yaml:"localPath"` // Scheme stripped and percent-decoded
	Name      string `json:"name" yaml:"name"`           // Last path element
	Stem      string `json:"stem" yaml:"stem"`           // Name up to the first dot
	Ext       string `json:"ext" yaml:"ext"`             // Text after the last dot, without the dot
}

/**************************************************************************************************
** TGoProGroup is the ordered list of segments of one GoPro recording, keyed by the 4-character
** clip number shared by all of its file stems.
**************************************************************************************************/
type TGoProGroup struct {
	ClipKey string     `json:"clipKey" yaml:"clipKey"` // Characters 5-8 of the stem
	Files   []TFileRef `json:"files" yaml:"files"`     // Sorted by LocalPath once finalised
}

/**************************************************************************************************
** THashSource carries the properties of a media clip needed to find the file whose content
** identifies it. Hash, when already known, short-circuits any file access.
**************************************************************************************************/
type THashSource struct {
	Service          string `json:"service" yaml:"service"`                   // Media service name, e.g. "avformat", "timewarp"
	Resource         string `json:"resource" yaml:"resource"`                 // Resource as loaded
	OriginalResource string `json:"originalResource" yaml:"originalResource"` // Source file behind a proxy
	WarpResource     string `json:"warpResource" yaml:"warpResource"`         // Source file behind a speed change
	Filename         string `json:"filename" yaml:"filename"`                 // Stabilisation data file
	IsProxy          bool   `json:"isProxy" yaml:"isProxy"`                   // Resource is a proxy of OriginalResource
	Hash             string `json:"hash,omitempty" yaml:"hash,omitempty"`     // Previously computed digest
}

/**************************************************************************************************
** THashResult is the outcome of hashing a single file in a batch. An empty Hash means the file
** could not be read, Err then holds the reason.
**************************************************************************************************/
type THashResult struct {
	Path string `json:"path" yaml:"path"`
	Hash string `json:"hash" yaml:"hash"`
	Err  error  `json:"-" yaml:"-"`
}
