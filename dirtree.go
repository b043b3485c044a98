package cfb

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf16"
)

// compareDirNames imposes the sibling order the directory tree
// requires: shorter names sort first; names of equal length compare
// case-insensitively by their upper-cased form. Equal names are a tie.
func compareDirNames(a, b string) int {
	if la, lb := utf16Len(a), utf16Len(b); la != lb {
		return la - lb
	}
	return strings.Compare(strings.ToUpper(a), strings.ToUpper(b))
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// buildTree sorts the children of the storage at idx, chains the sorted
// siblings through their right links, points the storage's child link
// at the smallest, and recurses into child storages. Left links stay
// unset; a one-sided sibling list is valid, though not height-balanced.
func (e *encoder) buildTree(idx int) error {
	ent := &e.entries[idx]
	if ent.Kind != KindStorage {
		return fmt.Errorf("%w: entry %d (%q)", ErrNotStorage, idx, ent.Name)
	}
	if len(ent.Children) == 0 {
		return nil
	}
	kids := slices.Clone(ent.Children)
	slices.SortStableFunc(kids, func(a, b int) int {
		return compareDirNames(e.entries[a].Name, e.entries[b].Name)
	})
	e.state[idx].child = uint32(kids[0])
	for i, k := range kids[:len(kids)-1] {
		e.state[k].right = uint32(kids[i+1])
	}
	for _, k := range kids {
		if e.entries[k].Kind == KindStorage {
			if err := e.buildTree(k); err != nil {
				return err
			}
		}
	}
	return nil
}
