package field

import "fmt"

// Selection is a range of raw text with a direction.
// Anchor is where the selection started; Head is where typing occurs.
// When Anchor == Head the selection is just a cursor.
// Offsets are raw rune offsets. Selection is an immutable value type.
type Selection struct {
	Anchor int
	Head   int
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head int) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursorSelection creates a selection with no extent.
func NewCursorSelection(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Len returns the number of selected runes.
func (s Selection) Len() int {
	return s.End() - s.Start()
}

// Start returns the lower bound of the selection.
func (s Selection) Start() int {
	return min(s.Anchor, s.Head)
}

// End returns the upper bound of the selection.
func (s Selection) End() int {
	return max(s.Anchor, s.Head)
}

// Extend returns the selection with head moved to offset.
func (s Selection) Extend(offset int) Selection {
	return Selection{Anchor: s.Anchor, Head: offset}
}

// MoveTo returns a collapsed selection at offset.
func (s Selection) MoveTo(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// Collapse collapses the selection to its head.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Head, Head: s.Head}
}

// Clamp restricts both ends to [0, maxOffset].
func (s Selection) Clamp(maxOffset int) Selection {
	return Selection{
		Anchor: min(max(s.Anchor, 0), maxOffset),
		Head:   min(max(s.Head, 0), maxOffset),
	}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", s.Head)
	}
	return fmt.Sprintf("Selection(%d->%d)", s.Anchor, s.Head)
}

// AdjustForDeletion moves offset to account for deleting [start, end).
// Offsets inside the deleted range move to its start.
func AdjustForDeletion(offset, start, end int) int {
	if offset <= start {
		return offset
	}
	if offset < end {
		return start
	}
	return offset - (end - start)
}

// AdjustForInsertion moves offset to account for inserting n runes at
// at. Offsets at the insertion point move to the end of the new text.
func AdjustForInsertion(offset, at, n int) int {
	if offset < at {
		return offset
	}
	return offset + n
}
