package art

// This file implements the simple multibit trie: every stride level gets
// its own subtable, with no path compression. It mirrors the original's
// rtArtInsertRoute/rtArtDeleteRoute/rtArtFindMatch/rtArtFindExactMatch,
// generalized from a single 32-bit address word to arbitrary byte
// slices and an arbitrary stride schedule.

func (t *Table) insertSimple(e *RouteEntry) (*RouteEntry, error) {
	if e.Plen == 0 {
		if r := t.root.slots[1].route; r != nil {
			return r, nil
		}
		t.root.slots[1].route = e
		t.nRoutes++
		return e, nil
	}

	cur := t.root
	level := 0
	for {
		si := t.schedule[level]
		startBit := si.tl - si.sl
		if e.Plen <= si.tl {
			threshold := cur.fringeThreshold()
			fringeCheck := level < len(t.schedule)-1
			k := baseIndexAt(e.Dest[:], startBit, e.Plen-startBit, si.sl)
			return t.insertAtSimple(cur, k, threshold, fringeCheck, e), nil
		}

		idx := fringeIndexAt(e.Dest[:], startBit, si.sl)
		s := &cur.slots[idx]
		if s.child == nil {
			child, err := newSubtable(level+1, t.schedule[level+1].sl)
			if err != nil {
				return nil, err
			}
			if s.route != nil {
				child.slots[1].route = s.route
				s.route = nil
			}
			cur.count++
			s.child = child
			t.nSubtables++
		}
		cur = s.child
		level++
	}
}

func (t *Table) insertAtSimple(at *subtable, k, threshold int, fringeCheck bool, e *RouteEntry) *RouteEntry {
	r := at.routeAt(k, fringeCheck)
	if r != nil && r.Equal(e) {
		return r
	}
	at.count++
	if k < threshold {
		at.allot(threshold, k, r, e, fringeCheck)
	} else {
		at.setRouteAt(k, e, fringeCheck)
	}
	t.nRoutes++
	return e
}

func (t *Table) deleteSimple(dest []byte, plen int) (*RouteEntry, bool) {
	if plen == 0 {
		r := t.root.slots[1].route
		if r == nil {
			return nil, false
		}
		t.root.slots[1].route = nil
		t.nRoutes--
		return r, true
	}

	type frame struct {
		t   *subtable
		idx int
	}
	var path []frame
	cur := t.root
	level := 0
	for {
		si := t.schedule[level]
		startBit := si.tl - si.sl
		if plen <= si.tl {
			threshold := cur.fringeThreshold()
			fringeCheck := level < len(t.schedule)-1
			k := baseIndexAt(dest, startBit, plen-startBit, si.sl)
			r := cur.routeAt(k, fringeCheck)
			if r == nil || r.Plen != plen || !cmpAddr(r.Dest[:], dest, plen) {
				return nil, false
			}

			t.nRoutes--
			var replacement *RouteEntry
			if k>>1 > 1 {
				replacement = cur.routeAt(k>>1, false)
			}
			cur.count--

			target := r
			collapsedRoute := target
			at := cur
			atK := k
			atThreshold := threshold
			curLevel := level

			for len(path) > 0 && at.count == 0 {
				parent := path[len(path)-1].t
				pIdx := path[len(path)-1].idx
				path = path[:len(path)-1]
				curLevel--

				freedDefault := at.slots[1].route
				parent.slots[pIdx].child = nil
				parent.slots[pIdx].route = freedDefault
				parent.count--
				t.nSubtables--

				collapsedRoute = freedDefault
				at = parent
				atK = pIdx
				atThreshold = at.fringeThreshold()
			}

			if collapsedRoute == target {
				atFringeCheck := curLevel < len(t.schedule)-1
				if atK < atThreshold {
					at.allot(atThreshold, atK, target, replacement, atFringeCheck)
				} else {
					at.setRouteAt(atK, replacement, atFringeCheck)
				}
			}
			return target, true
		}

		idx := fringeIndexAt(dest, startBit, si.sl)
		child := cur.slots[idx].child
		if child == nil {
			return nil, false
		}
		path = append(path, frame{cur, idx})
		cur = child
		level++
	}
}

func (t *Table) findMatchSimple(dest []byte) *RouteEntry {
	cur := t.root
	best := cur.slots[1].route
	level := 0
	for {
		si := t.schedule[level]
		startBit := si.tl - si.sl
		idx := fringeIndexAt(dest, startBit, si.sl)
		s := &cur.slots[idx]
		if s.child != nil {
			if d := s.child.slots[1].route; d != nil {
				best = d
			}
			cur = s.child
			level++
			continue
		}
		if s.route != nil {
			return s.route
		}
		return best
	}
}

func (t *Table) findExactMatchSimple(dest []byte, plen int) *RouteEntry {
	def := t.root.slots[1].route
	if plen == 0 {
		return def
	}
	cur := t.root
	level := 0
	for {
		si := t.schedule[level]
		startBit := si.tl - si.sl
		if plen <= si.tl {
			fringeCheck := level < len(t.schedule)-1
			k := baseIndexAt(dest, startBit, plen-startBit, si.sl)
			r := cur.routeAt(k, fringeCheck)
			if r != nil && r.Plen == plen && cmpAddr(r.Dest[:], dest, plen) {
				return r
			}
			return def
		}
		idx := fringeIndexAt(dest, startBit, si.sl)
		child := cur.slots[idx].child
		if child == nil {
			return def
		}
		cur = child
		level++
	}
}
