package model

import "unique"

// Segment is one interned path segment. Two Segments holding the same text
// compare equal in O(1), and a Segment may be used as a map key.
//
// The zero Segment is the empty segment: it is the name of the root, which
// has none, and renders as "".
type Segment struct {
	h unique.Handle[string]
}

// NewSegment interns text and returns its Segment. Empty text yields the
// zero Segment.
func NewSegment(text string) Segment {
	if text == "" {
		return Segment{}
	}
	return Segment{h: unique.Make(text)}
}

// String returns the segment text, "" for the zero Segment.
func (s Segment) String() string {
	if s == (Segment{}) {
		return ""
	}
	return s.h.Value()
}

// IsEmpty reports whether s is the zero Segment.
func (s Segment) IsEmpty() bool {
	return s == (Segment{})
}
