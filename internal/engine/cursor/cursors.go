package cursor

import "sort"

// CursorSet manages the carets of an editor.
// Selections are kept sorted by position and non-overlapping. One of them
// is the primary caret; when selections merge, the merged selection
// inherits primary status. A CursorSet is not safe for concurrent use.
type CursorSet struct {
	selections []Selection
	primary    int // index into selections; meaningless when empty
}

// NewCursorSet creates a cursor set from the given selections.
// The first selection is primary. With no arguments the set is empty.
func NewCursorSet(sels ...Selection) *CursorSet {
	cs := &CursorSet{
		selections: make([]Selection, len(sels)),
	}
	copy(cs.selections, sels)
	if len(sels) > 0 {
		cs.normalize(sels[0])
	}
	return cs
}

// NewCursorSetAt creates a cursor set with a single caret at offset.
func NewCursorSetAt(offset ByteOffset) *CursorSet {
	return NewCursorSet(NewCursorSelection(offset))
}

// Primary returns the primary selection. ok is false if the set is empty.
func (cs *CursorSet) Primary() (sel Selection, ok bool) {
	if len(cs.selections) == 0 {
		return Selection{}, false
	}
	return cs.selections[cs.primary], true
}

// PrimaryIndex returns the index of the primary selection in All, or -1.
func (cs *CursorSet) PrimaryIndex() int {
	if len(cs.selections) == 0 {
		return -1
	}
	return cs.primary
}

// All returns a copy of all selections in position order.
func (cs *CursorSet) All() []Selection {
	result := make([]Selection, len(cs.selections))
	copy(result, cs.selections)
	return result
}

// Count returns the number of carets.
func (cs *CursorSet) Count() int {
	return len(cs.selections)
}

// IsEmpty returns true if the set holds no carets.
func (cs *CursorSet) IsEmpty() bool {
	return len(cs.selections) == 0
}

// IsMulti returns true if there are multiple carets.
func (cs *CursorSet) IsMulti() bool {
	return len(cs.selections) > 1
}

// Add adds a selection and makes it primary.
func (cs *CursorSet) Add(sel Selection) {
	cs.selections = append(cs.selections, sel)
	cs.normalize(sel)
}

// AddSecondary adds a selection without changing the primary caret.
func (cs *CursorSet) AddSecondary(sel Selection) {
	if len(cs.selections) == 0 {
		cs.Add(sel)
		return
	}
	primary := cs.selections[cs.primary]
	cs.selections = append(cs.selections, sel)
	cs.normalize(primary)
}

// SetPrimary replaces the primary selection, keeping the others.
// On an empty set it adds sel.
func (cs *CursorSet) SetPrimary(sel Selection) {
	if len(cs.selections) == 0 {
		cs.Add(sel)
		return
	}
	cs.selections[cs.primary] = sel
	cs.normalize(sel)
}

// Set replaces all selections with a single primary selection.
func (cs *CursorSet) Set(sel Selection) {
	cs.selections = []Selection{sel}
	cs.primary = 0
}

// SetAll replaces all selections. primaryIndex indexes sels; out-of-range
// values make the first selection primary.
func (cs *CursorSet) SetAll(sels []Selection, primaryIndex int) {
	cs.selections = make([]Selection, len(sels))
	copy(cs.selections, sels)
	if len(sels) == 0 {
		cs.primary = 0
		return
	}
	if primaryIndex < 0 || primaryIndex >= len(sels) {
		primaryIndex = 0
	}
	cs.normalize(sels[primaryIndex])
}

// Clear removes every caret except the primary one.
func (cs *CursorSet) Clear() {
	if len(cs.selections) > 1 {
		cs.Set(cs.selections[cs.primary])
	}
}

// RemoveAll removes every caret, leaving the set empty.
func (cs *CursorSet) RemoveAll() {
	cs.selections = cs.selections[:0]
	cs.primary = 0
}

// MapInPlace applies f to each selection in place.
func (cs *CursorSet) MapInPlace(f func(sel Selection) Selection) {
	if len(cs.selections) == 0 {
		return
	}
	for i, sel := range cs.selections {
		cs.selections[i] = f(sel)
	}
	cs.normalize(cs.selections[cs.primary])
}

// Clone returns a deep copy of the cursor set.
func (cs *CursorSet) Clone() *CursorSet {
	clone := &CursorSet{
		selections: make([]Selection, len(cs.selections)),
		primary:    cs.primary,
	}
	copy(clone.selections, cs.selections)
	return clone
}

// Equals returns true if two cursor sets have the same selections and primary.
func (cs *CursorSet) Equals(other *CursorSet) bool {
	if other == nil || cs.Count() != other.Count() {
		return false
	}
	if cs.PrimaryIndex() != other.PrimaryIndex() {
		return false
	}
	for i, sel := range cs.selections {
		if !sel.Equals(other.selections[i]) {
			return false
		}
	}
	return true
}

// normalize sorts selections, merges overlapping ones, and points the
// primary index at the selection that now contains primary.
func (cs *CursorSet) normalize(primary Selection) {
	if len(cs.selections) > 1 {
		sort.Slice(cs.selections, func(i, j int) bool {
			si, sj := cs.selections[i].Start(), cs.selections[j].Start()
			if si != sj {
				return si < sj
			}
			return cs.selections[i].End() > cs.selections[j].End()
		})

		merged := cs.selections[:1]
		for _, sel := range cs.selections[1:] {
			last := &merged[len(merged)-1]
			if sel.Start() < last.End() || sel.Start() == last.Start() {
				*last = last.Merge(sel)
			} else {
				merged = append(merged, sel)
			}
		}
		cs.selections = merged
	}

	cs.primary = 0
	for i, sel := range cs.selections {
		if sel.Equals(primary) {
			cs.primary = i
			return
		}
	}
	for i, sel := range cs.selections {
		if sel.Start() <= primary.Start() && primary.End() <= sel.End() {
			cs.primary = i
			return
		}
	}
}
