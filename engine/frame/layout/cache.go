package layout

import (
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
)

// measurement is the result of sizing one box under one constraint shape:
// the border-box size plus the margins that escaped through the box's edges.
type measurement struct {
	used       bool
	avail      Constraint // the constraint as queried
	size       dimen.Point // border-box size (X = width, Y = height)
	escTop     dimen.Dimen
	escBot     dimen.Dimen
	hasEscTop  bool
	hasEscBot  bool
	baseline   dimen.Dimen
	unresolved bool // zero-size fallback was substituted
}

// One slot per combination of per-axis sizing modes (3 modes on each of
// two axes).
const measurementSlots = 9

// layoutSlot holds a complete layout result of one container: the positions
// of its children relative to the container's own content origin. Relative
// addressing keeps the slot valid regardless of where an ancestor later
// places the container.
type layoutSlot struct {
	used      bool
	avail     Constraint
	content   dimen.Point // content-box size
	positions map[boxtree.NodeIndex]dimen.Point
}

type cacheEntry struct {
	meas [measurementSlots]measurement
	full layoutSlot
}

func (e *cacheEntry) empty() bool {
	if e.full.used {
		return false
	}
	for i := range e.meas {
		if e.meas[i].used {
			return false
		}
	}
	return true
}

// Cache stores prior measurements and layout results per box. It is
// addressed by tree index and kept strictly outside the box tree: entries
// live in an array parallel to the arena, resized together with it, so no
// entry can outlive or dangle behind its box.
type Cache struct {
	entries []cacheEntry
	hits    uint64
	misses  uint64
}

// NewCache creates a cache with n empty entries.
func NewCache(n int) *Cache {
	return &Cache{entries: make([]cacheEntry, n)}
}

// Resize grows the entry array to hold n entries. Existing entries are
// preserved; shrinking is not supported, slots of removed boxes simply stay
// unused.
func (c *Cache) Resize(n int) {
	if n <= len(c.entries) {
		return
	}
	grown := make([]cacheEntry, n)
	copy(grown, c.entries)
	c.entries = grown
}

// Hits returns the number of successful lookups since creation.
func (c *Cache) Hits() uint64 {
	return c.hits
}

// Misses returns the number of failed lookups since creation.
func (c *Cache) Misses() uint64 {
	return c.misses
}

// Lookup returns a stored measurement for a box under a constraint shape.
// A lookup hits if the stored available size matches the query, or if the
// query's fixed dimension already equals the stored result size on that
// axis. A slot whose stored shape does not correspond to its address is
// treated as a plain miss.
func (c *Cache) Lookup(n boxtree.NodeIndex, cnstr Constraint) (measurement, bool) {
	if int(n) >= len(c.entries) || n < 0 {
		c.misses++
		return measurement{}, false
	}
	m := c.entries[n].meas[cnstr.slot()]
	if !m.used {
		c.misses++
		return measurement{}, false
	}
	if m.avail.slot() != cnstr.slot() {
		// cache inconsistency, never fatal
		tracer().Errorf("cache slot of node %d holds foreign shape %v", n, m.avail)
		c.misses++
		return measurement{}, false
	}
	if m.avail.matches(cnstr) || c.resultMatches(m, cnstr) {
		c.hits++
		return m, true
	}
	c.misses++
	return measurement{}, false
}

// resultMatches checks the shortcut hit: every fixed axis of the query
// equals the stored result size on that axis, with identical free-axis
// modes.
func (c *Cache) resultMatches(m measurement, cnstr Constraint) bool {
	if m.avail.slot() != cnstr.slot() {
		return false
	}
	if cnstr.W.IsAbsolute() && cnstr.W.Unwrap() != m.size.X {
		return false
	}
	if cnstr.H.IsAbsolute() && cnstr.H.Unwrap() != m.size.Y {
		return false
	}
	return cnstr.W.IsAbsolute() || cnstr.H.IsAbsolute()
}

// Store records a measurement for a box under a constraint shape.
func (c *Cache) Store(n boxtree.NodeIndex, cnstr Constraint, m measurement) {
	if int(n) >= len(c.entries) || n < 0 {
		return
	}
	m.used = true
	m.avail = cnstr
	c.entries[n].meas[cnstr.slot()] = m
}

// LookupFull returns the full layout slot of a container if it was stored
// under a matching constraint shape.
func (c *Cache) LookupFull(n boxtree.NodeIndex, cnstr Constraint) (layoutSlot, bool) {
	if int(n) >= len(c.entries) || n < 0 {
		return layoutSlot{}, false
	}
	full := c.entries[n].full
	if !full.used || !full.avail.matches(cnstr) {
		return layoutSlot{}, false
	}
	return full, true
}

// StoreFull records the complete child-position map of a container, tagged
// with the constraint shape it was computed under.
func (c *Cache) StoreFull(n boxtree.NodeIndex, cnstr Constraint, content dimen.Point,
	positions map[boxtree.NodeIndex]dimen.Point) {
	//
	if int(n) >= len(c.entries) || n < 0 {
		return
	}
	c.entries[n].full = layoutSlot{
		used:      true,
		avail:     cnstr,
		content:   content,
		positions: positions,
	}
}

// ClearNode drops all cached state of one box. Clearing is idempotent.
func (c *Cache) ClearNode(n boxtree.NodeIndex) {
	if int(n) >= len(c.entries) || n < 0 {
		return
	}
	c.entries[n] = cacheEntry{}
}

// IsEmpty returns true if a box has no cached state at all.
func (c *Cache) IsEmpty(n boxtree.NodeIndex) bool {
	if int(n) >= len(c.entries) || n < 0 {
		return true
	}
	return c.entries[n].empty()
}
