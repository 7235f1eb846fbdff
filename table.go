package art

import "github.com/pkg/errors"

// WalkOrder selects the traversal order used by Table.Walk.
type WalkOrder int

const (
	// WalkBFS visits routes level by level.
	WalkBFS WalkOrder = iota
	// WalkDFS visits routes depth first.
	WalkDFS
)

// Config describes the shape of a Table: its address width, its stride
// schedule, and which trie variant to build.
type Config struct {
	// AddrBits is the address width in bits (32 for IPv4, 128 for
	// IPv6, or any custom width up to 128).
	AddrBits int

	// Strides is the ordered list of per-level stride widths, each at
	// most 24 bits, summing to exactly AddrBits.
	Strides []int

	// Compressed selects the path-compressed trie when true, the
	// simple multibit trie when false.
	Compressed bool
}

func (c Config) validate() error {
	if c.AddrBits <= 0 || c.AddrBits > 128 {
		return errors.Wrapf(ErrInvalidConfig, "AddrBits %d out of range", c.AddrBits)
	}
	if len(c.Strides) == 0 {
		return errors.Wrap(ErrInvalidConfig, "Strides must be non-empty")
	}
	sum := 0
	for i, s := range c.Strides {
		if s <= 0 || s > 24 {
			return errors.Wrapf(ErrInvalidConfig, "stride %d at level %d out of range (1..24)", s, i)
		}
		sum += s
	}
	if sum != c.AddrBits {
		return errors.Wrapf(ErrInvalidConfig, "strides sum to %d bits, want %d", sum, c.AddrBits)
	}
	return nil
}

// Table is a single ART routing table, either the simple multibit trie
// or the path-compressed trie, selected by Config.Compressed at
// construction.
//
// A Table is not safe for concurrent use: like the original C
// implementation it carries no internal synchronization, but unlike it,
// every operation now allocates its own descent stack on the call's
// local frame instead of a table-wide scratch buffer, so concurrent
// readers no longer corrupt each other's in-flight lookups the way a
// shared scratch buffer would. Concurrent writers, or a writer
// interleaved with readers, still require the caller to serialize
// access.
type Table struct {
	cfg      Config
	schedule []strideInfo
	root     *subtable

	nRoutes    int
	nSubtables int

	destroyed bool
}

// New builds an empty Table per cfg.
func New(cfg Config) (*Table, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	schedule := buildStrideSchedule(cfg.Strides)
	root, err := newSubtable(0, schedule[0].sl)
	if err != nil {
		return nil, err
	}
	return &Table{
		cfg:        cfg,
		schedule:   schedule,
		root:       root,
		nSubtables: 1,
	}, nil
}

// NewRoute allocates a RouteEntry for insertion into t. dest must be at
// least enough bytes to cover plen bits; it is copied, not retained.
func (t *Table) NewRoute(dest []byte, plen int, value any) (*RouteEntry, error) {
	if plen < 0 || plen > t.cfg.AddrBits {
		return nil, errors.Wrapf(ErrInvalidPrefix, "prefix length %d out of range (0..%d)", plen, t.cfg.AddrBits)
	}
	if plen > 0 && len(dest)*8 < plen {
		return nil, errors.Wrapf(ErrInvalidPrefix, "destination too short for prefix length %d", plen)
	}
	e := &RouteEntry{Plen: plen, Value: value}
	copy(e.Dest[:], dest)
	if plen > 0 {
		e.level = plen2level(t.schedule, plen)
	}
	return e, nil
}

// Insert adds e to the table. If a route already exists for e's exact
// destination/prefix-length pair, Insert leaves it untouched and returns
// the existing entry with a nil error. On an allocation failure
// (ErrOutOfMemory) e is not inserted, but subtables the call had already
// linked in at shallower levels are not removed.
func (t *Table) Insert(e *RouteEntry) (*RouteEntry, error) {
	if t.destroyed {
		return nil, ErrDestroyed
	}
	if e.Plen < 0 || e.Plen > t.cfg.AddrBits {
		return nil, errors.Wrapf(ErrInvalidPrefix, "prefix length %d out of range (0..%d)", e.Plen, t.cfg.AddrBits)
	}
	if e.Plen > 0 {
		e.level = plen2level(t.schedule, e.Plen)
	}
	var (
		got *RouteEntry
		err error
	)
	if t.cfg.Compressed {
		got, err = t.insertPC(e)
	} else {
		got, err = t.insertSimple(e)
	}
	return got, err
}

// Delete removes the route matching dest/plen exactly and returns it.
// It reports false if no such route exists.
func (t *Table) Delete(dest []byte, plen int) (*RouteEntry, bool) {
	if t.destroyed || plen < 0 || plen > t.cfg.AddrBits {
		return nil, false
	}
	if t.cfg.Compressed {
		return t.deletePC(dest, plen)
	}
	return t.deleteSimple(dest, plen)
}

// FindMatch returns the longest-prefix-matching route for dest, or nil
// if the table holds no matching route (including no default).
func (t *Table) FindMatch(dest []byte) *RouteEntry {
	if t.destroyed {
		return nil
	}
	if t.cfg.Compressed {
		return t.findMatchPC(dest)
	}
	return t.findMatchSimple(dest)
}

// FindExactMatch returns the route whose destination/prefix-length
// exactly equals dest/plen. If no such route exists, it returns the
// table's default route instead of nil — a deliberately preserved quirk
// of the original implementation, not a bug: callers that need to
// distinguish "no default" from "no exact match" should check the
// returned entry's Plen (0 for the default, or nil if even the default
// is absent).
func (t *Table) FindExactMatch(dest []byte, plen int) *RouteEntry {
	if t.destroyed {
		return nil
	}
	if plen < 0 || plen > t.cfg.AddrBits {
		return t.root.slots[1].route
	}
	if t.cfg.Compressed {
		return t.findExactMatchPC(dest, plen)
	}
	return t.findExactMatchSimple(dest, plen)
}

// Flush removes every route from the table without invalidating the
// handle: the table is reset to the same state New would produce.
func (t *Table) Flush() error {
	if t.destroyed {
		return ErrDestroyed
	}
	root, err := newSubtable(0, t.schedule[0].sl)
	if err != nil {
		return err
	}
	t.root = root
	t.nRoutes = 0
	t.nSubtables = 1
	return nil
}

// Destroy releases the table. After Destroy, Insert, Flush, Walk,
// Validate and Destroy return ErrDestroyed, and Delete, FindMatch and
// FindExactMatch return their zero values.
func (t *Table) Destroy() error {
	if t.destroyed {
		return ErrDestroyed
	}
	t.root = nil
	t.destroyed = true
	return nil
}

// RouteCount returns the number of routes currently stored (the default
// route, if present, counts as one).
func (t *Table) RouteCount() int { return t.nRoutes }

// SubtableCount returns the number of subtables currently allocated,
// including the root.
func (t *Table) SubtableCount() int { return t.nSubtables }
