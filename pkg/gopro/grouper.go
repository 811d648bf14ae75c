package gopro

import (
	"sort"

	"github.com/majorfi/clipkit/pkg/utils"
)

/**************************************************************************************************
** groupSet keeps the groups being built in the order their clip key was first seen, together
** with the index of each grouped input so the trailing pass can skip it.
**************************************************************************************************/
type groupSet struct {
	order   []string
	byKey   map[string]*utils.TGoProGroup
	grouped map[int]struct{}
}

func newGroupSet() *groupSet {
	return &groupSet{
		byKey:   make(map[string]*utils.TGoProGroup),
		grouped: make(map[int]struct{}),
	}
}

func (g *groupSet) add(key string, index int, ref utils.TFileRef) {
	group, ok := g.byKey[key]
	if !ok {
		group = &utils.TGoProGroup{ClipKey: key}
		g.byKey[key] = group
		g.order = append(g.order, key)
	}
	group.Files = append(group.Files, ref)
	g.grouped[index] = struct{}{}
}

func (g *groupSet) has(key string) bool {
	group, ok := g.byKey[key]
	return ok && len(group.Files) > 0
}

/**************************************************************************************************
** GroupFiles partitions inputs into GoPro recordings and everything else.
** 1. Every first-file candidate opens (or joins) the group of its clip key.
** 2. Every continuation candidate joins the group of its clip key, but only if that group
**    already exists. Files already placed as first files are not added twice.
** 3. Each group is sorted by local path, case-sensitively.
**
** Groups are returned in the order their clip key was first seen. Ungrouped files keep their
** input order. Every input appears exactly once across both results.
**
** @param inputs - Paths or file URLs, in the order they were received
** @return []utils.TGoProGroup - Finalised GoPro recordings
** @return []utils.TFileRef - Files that are not part of any recording
**************************************************************************************************/
func GroupFiles(inputs []string) ([]utils.TGoProGroup, []utils.TFileRef) {
	refs := make([]utils.TFileRef, len(inputs))
	classes := make([]Classification, len(inputs))
	for i, input := range inputs {
		refs[i] = utils.NewFileRef(input)
		classes[i] = Classify(refs[i])
	}

	set := newGroupSet()

	/**********************************************************************************************
	** First look for GoPro main files.
	**********************************************************************************************/
	for i, class := range classes {
		if class.First {
			set.add(class.ClipKey, i, refs[i])
		}
	}

	/**********************************************************************************************
	** Then look for split files, only if there is a matching main file.
	**********************************************************************************************/
	for i, class := range classes {
		if class.Continuation && !class.First && set.has(class.ClipKey) {
			set.add(class.ClipKey, i, refs[i])
		}
	}

	groups := make([]utils.TGoProGroup, 0, len(set.order))
	for _, key := range set.order {
		group := set.byKey[key]
		sort.SliceStable(group.Files, func(i, j int) bool {
			return group.Files[i].LocalPath < group.Files[j].LocalPath
		})
		groups = append(groups, *group)
	}

	rest := make([]utils.TFileRef, 0, len(refs)-len(set.grouped))
	for i, ref := range refs {
		if _, ok := set.grouped[i]; !ok {
			rest = append(rest, ref)
		}
	}

	return groups, rest
}

/**************************************************************************************************
** SortedFileList orders inputs so that the segments of each GoPro recording come first and in
** capture order, followed by every other file in its original relative order. Inputs are
** returned verbatim: a "file://" URL stays a URL.
**
** @param inputs - Paths or file URLs, in the order they were received
** @return []string - Reordered inputs
**************************************************************************************************/
func SortedFileList(inputs []string) []string {
	return Flatten(GroupFiles(inputs))
}

/**************************************************************************************************
** Flatten lists the members of every group, then the ungrouped files, as the paths originally
** received.
**
** @param groups - Groups returned by GroupFiles
** @param rest - Ungrouped files returned by GroupFiles
** @return []string - Paths in output order
**************************************************************************************************/
func Flatten(groups []utils.TGoProGroup, rest []utils.TFileRef) []string {
	size := len(rest)
	for _, group := range groups {
		size += len(group.Files)
	}

	result := make([]string, 0, size)
	for _, group := range groups {
		for _, ref := range group.Files {
			result = append(result, ref.Path)
		}
	}
	for _, ref := range rest {
		result = append(result, ref.Path)
	}
	return result
}
