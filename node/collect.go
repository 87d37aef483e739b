package node

import (
	"github.com/glintui/glint/focus"
)

// CollectFocusEntries walks the tree depth-first and returns the frame's
// flat focus order: every focusable node paired with its tree-position path.
// Stack children contribute their index to the path; single-child wrappers
// contribute slot 0. A parent entry precedes its descendants.
//
// Ids must be unique within one frame; a duplicate resolves by first match
// during later lookups, which is almost never what the application wants.
func CollectFocusEntries(root Node) []focus.Entry {
	var out []focus.Entry
	collectFocus(root, focus.Path{}, &out)
	return out
}

func collectFocus(n Node, path focus.Path, out *[]focus.Entry) {
	switch v := n.(type) {
	case Container:
		if v.HasFocus {
			*out = append(*out, focus.Entry{ID: v.FocusID, Path: path.Clone(), Kind: focus.KindGeneric})
		}
		collectFocus(v.Child, append(path, 0), out)

	case ScrollView:
		if v.HasFocus {
			*out = append(*out, focus.Entry{ID: v.FocusID, Path: path.Clone(), Kind: focus.KindScrollRegion})
		}
		collectFocus(v.Child, append(path, 0), out)

	case TextInput:
		if v.HasFocus {
			*out = append(*out, focus.Entry{ID: v.FocusID, Path: path.Clone(), Kind: focus.KindTextInput})
		}

	case Stack:
		for i, child := range v.Children {
			collectFocus(child, append(path, i), out)
		}
	}
}
