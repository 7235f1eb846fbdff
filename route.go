package art

// RouteEntry is a single routing table entry: a destination prefix and an
// opaque forwarding-plane payload.
//
// Dest holds the destination address left-justified in a 16-byte array;
// a table configured for 32-bit addresses (Config.AddrBits == 32) only
// ever inspects the first 4 bytes. Plen is the prefix length in bits.
// Value is never interpreted by the table; callers use it to carry a
// next hop, an interface index, or any other forwarding-plane data.
type RouteEntry struct {
	Dest  [16]byte
	Plen  int
	Value any

	// level is the stride level that owns this route, set by NewRoute
	// and again by Insert, so the path-compressed insert descent can
	// read it instead of recomputing plen2level at every step.
	level int
}

// Equal reports whether two route entries describe the same prefix
// (same destination bits over Plen, same Plen). It does not compare
// Value.
func (e *RouteEntry) Equal(o *RouteEntry) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.Plen == o.Plen && cmpAddr(e.Dest[:], o.Dest[:], e.Plen)
}
