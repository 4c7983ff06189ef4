package boxtree

import (
	"github.com/npillmayer/cords"
)

// TextCord wraps a plain string into a cord, to hold the content of a text
// run. Reconciliation may later splice edits into the cord without copying
// the unchanged fragments.
func TextCord(s string) cords.Cord {
	if s == "" {
		return cords.Cord{}
	}
	b := cords.NewBuilder()
	b.Append(textLeaf(s))
	return b.Cord()
}

// textLeaf is a minimal cords.Leaf over a string fragment.
type textLeaf string

// Weight is part of interface cords.Leaf.
func (l textLeaf) Weight() uint64 {
	return uint64(len(l))
}

// String is part of interface cords.Leaf.
func (l textLeaf) String() string {
	return string(l)
}

// Split is part of interface cords.Leaf.
func (l textLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return textLeaf(l[:i]), textLeaf(l[i:])
}

// Substring is part of interface cords.Leaf.
func (l textLeaf) Substring(i, j uint64) []byte {
	return []byte(l)[i:j]
}

var _ cords.Leaf = textLeaf("")
