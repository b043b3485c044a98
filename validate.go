package cfb

import (
	"fmt"
	"strings"
)

// validateEntries checks the entry list before any allocation happens:
// entry 0 is the root storage, child indices are in range, the child
// graph is a tree, names are usable, per-kind fields are consistent,
// and limits hold.
func validateEntries(entries []Entry, limits Limits) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: entry list is empty", ErrValidation)
	}
	if len(entries) > limits.MaxEntries {
		return fmt.Errorf("%w: %d entries exceed MaxEntries %d", ErrLimitExceeded, len(entries), limits.MaxEntries)
	}
	if entries[0].Kind != KindStorage {
		return fmt.Errorf("%w: entry 0 must be the root storage", ErrNotStorage)
	}

	parent := make([]int, len(entries))
	for i := range parent {
		parent[i] = -1
	}
	for i := range entries {
		e := &entries[i]
		if err := validateEntryName(e.Name, limits); err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrValidation, i, err)
		}
		switch e.Kind {
		case KindStorage:
			if e.Length != 0 || e.Content != nil {
				return fmt.Errorf("%w: storage %q carries stream fields", ErrValidation, e.Name)
			}
			for _, c := range e.Children {
				if c <= 0 || c >= len(entries) {
					return fmt.Errorf("%w: storage %q child index %d out of range", ErrValidation, e.Name, c)
				}
				if parent[c] != -1 {
					return fmt.Errorf("%w: entry %d has two parents", ErrValidation, c)
				}
				parent[c] = i
			}
		case KindStream:
			if len(e.Children) != 0 {
				return fmt.Errorf("%w: stream %q has children", ErrValidation, e.Name)
			}
			if e.Length > limits.MaxStreamSize {
				return fmt.Errorf("%w: stream %q declares %d bytes, MaxStreamSize is %d", ErrLimitExceeded, e.Name, e.Length, limits.MaxStreamSize)
			}
			if e.Length > 0 && e.Content == nil {
				return fmt.Errorf("%w: stream %q has no content source", ErrValidation, e.Name)
			}
		default:
			return fmt.Errorf("%w: entry %d has unknown kind %d", ErrValidation, i, e.Kind)
		}
	}

	// Every non-root entry has exactly one parent, so reaching all of
	// them from entry 0 rules out both cycles and orphans.
	seen := make([]bool, len(entries))
	seen[0] = true
	reached := 1
	stack := []int{0}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range entries[i].Children {
			if !seen[c] {
				seen[c] = true
				reached++
				stack = append(stack, c)
			}
		}
	}
	if reached != len(entries) {
		return fmt.Errorf("%w: %d entries unreachable from the root", ErrValidation, len(entries)-reached)
	}
	return nil
}

func validateEntryName(name string, limits Limits) error {
	if name == "" {
		return fmt.Errorf("name is empty")
	}
	if strings.ContainsAny(name, "/\\:!\x00") {
		return fmt.Errorf("name %q contains a reserved character", name)
	}
	if n := utf16Len(name); n > limits.MaxNameLength {
		return fmt.Errorf("name is %d UTF-16 units, MaxNameLength is %d", n, limits.MaxNameLength)
	}
	return nil
}
