package art

// This file implements the path-compressed trie: subtables are created
// only where the trie actually branches, each caching the address bits
// skipped since its parent so that insertion can detect, and repair, a
// divergence against routes that were compressed past. It mirrors the
// original's rtArtPcInsertRoute/insertNewSubtable/rtArtPcDeleteRoute/
// rtArtPcDelete/rtArtPcFindMatch/rtArtPcFindExactMatch.

// levelContainingBit returns the schedule level whose stride window
// contains global bit offset bit.
func levelContainingBit(schedule []strideInfo, bit int) int {
	for l, s := range schedule {
		start := s.tl - s.sl
		if bit >= start && bit < s.tl {
			return l
		}
	}
	return len(schedule) - 1
}

func (t *Table) newPCChild(level int, addr []byte) (*subtable, error) {
	si := t.schedule[level]
	startBit := si.tl - si.sl
	child, err := newSubtable(level, si.sl)
	if err != nil {
		return nil, err
	}
	nBytes := (startBit + 7) / 8
	child.cachedAddr = make([]byte, nBytes)
	copy(child.cachedAddr, addr[:nBytes])
	child.cachedLen = startBit
	return child, nil
}

func (t *Table) insertPC(e *RouteEntry) (*RouteEntry, error) {
	if e.Plen == 0 {
		if r := t.root.slots[1].route; r != nil {
			return r, nil
		}
		t.root.slots[1].route = e
		t.nRoutes++
		return e, nil
	}

	cur := t.root
	for {
		si := t.schedule[cur.level]
		startBit := si.tl - si.sl

		if e.Plen <= si.tl {
			threshold := cur.fringeThreshold()
			fringeCheck := cur.level < len(t.schedule)-1
			k := baseIndexAt(e.Dest[:], startBit, e.Plen-startBit, si.sl)
			return t.insertAtPC(cur, k, threshold, fringeCheck, e), nil
		}

		idx := fringeIndexAt(e.Dest[:], startBit, si.sl)
		s := &cur.slots[idx]

		if s.child == nil {
			if s.route == nil {
				child, err := t.newPCChild(e.level, e.Dest[:])
				if err != nil {
					return nil, err
				}
				s.child = child
				cur.nSubtables++
				t.nSubtables++
				cur = child
				continue
			}
			// A plain route occupies this fringe slot; by the fringe
			// invariant its Plen equals si.tl exactly, so it belongs
			// at cur.level+1's default, never further down. Materialize
			// exactly that level (no compression skip here) and keep
			// going; the next iteration may still skip past it.
			child, err := t.newPCChild(cur.level+1, e.Dest[:])
			if err != nil {
				return nil, err
			}
			child.slots[1].route = s.route
			child.nRoutes++
			s.route = nil
			s.child = child
			cur.nSubtables++
			t.nSubtables++
			cur = child
			continue
		}

		child := s.child
		targetStart := t.schedule[e.level].tl - t.schedule[e.level].sl
		cmpLimit := child.cachedLen
		if targetStart < cmpLimit {
			cmpLimit = targetStart
		}
		diff := firstDiffBit(child.cachedAddr, e.Dest[:], cmpLimit)
		if diff < cmpLimit {
			return t.splitAndAttach(cur, idx, child, e, levelContainingBit(t.schedule, diff))
		}
		if child.cachedLen > targetStart {
			return t.splitAndAttach(cur, idx, child, e, e.level)
		}
		if child.level == e.level {
			threshold := child.fringeThreshold()
			fringeCheck := child.level < len(t.schedule)-1
			k := baseIndexAt(e.Dest[:], targetStart, e.Plen-targetStart, t.schedule[e.level].sl)
			return t.insertAtPC(child, k, threshold, fringeCheck, e), nil
		}
		cur = child
	}
}

// splitAndAttach inserts a new intermediate subtable at splitLevel
// between parent (at index pIdx) and oldChild, because e's address
// diverges from oldChild's cached prefix somewhere at or before
// splitLevel's stride window. At most two new subtables are created:
// the split node itself, and (only when e's own level is deeper than
// splitLevel) a fresh subtable to hold e.
func (t *Table) splitAndAttach(parent *subtable, pIdx int, oldChild *subtable, e *RouteEntry, splitLevel int) (*RouteEntry, error) {
	sp := t.schedule[splitLevel]
	spStart := sp.tl - sp.sl

	newT, err := t.newPCChild(splitLevel, e.Dest[:])
	if err != nil {
		return nil, err
	}
	parent.slots[pIdx].child = newT
	t.nSubtables++

	// oldChild's default used to answer lookups for every address in its
	// whole compressed span, including ones that now diverge from
	// oldChild's cached prefix before ever reaching it. That coverage
	// belongs to the newly inserted splitLevel now, not to oldChild.
	if d := oldChild.slots[1].route; d != nil {
		newT.slots[1].route = d
		newT.nRoutes++
		oldChild.slots[1].route = nil
		oldChild.nRoutes--
	}

	oldIdx := fringeIndexAt(oldChild.cachedAddr, spStart, sp.sl)
	newT.slots[oldIdx].child = oldChild
	newT.nSubtables++

	if e.level == splitLevel {
		threshold := newT.fringeThreshold()
		fringeCheck := splitLevel < len(t.schedule)-1
		k := baseIndexAt(e.Dest[:], spStart, e.Plen-spStart, sp.sl)
		return t.insertAtPC(newT, k, threshold, fringeCheck, e), nil
	}

	eChild, err := t.newPCChild(e.level, e.Dest[:])
	if err != nil {
		return nil, err
	}
	eIdx := fringeIndexAt(e.Dest[:], spStart, sp.sl)
	newT.slots[eIdx].child = eChild
	newT.nSubtables++
	t.nSubtables++

	es := t.schedule[e.level]
	esStart := es.tl - es.sl
	threshold := eChild.fringeThreshold()
	fringeCheck := e.level < len(t.schedule)-1
	k := baseIndexAt(e.Dest[:], esStart, e.Plen-esStart, es.sl)
	return t.insertAtPC(eChild, k, threshold, fringeCheck, e), nil
}

func (t *Table) insertAtPC(at *subtable, k, threshold int, fringeCheck bool, e *RouteEntry) *RouteEntry {
	r := at.routeAt(k, fringeCheck)
	if r != nil && r.Equal(e) {
		return r
	}
	at.nRoutes++
	if k < threshold {
		at.allot(threshold, k, r, e, fringeCheck)
	} else {
		at.setRouteAt(k, e, fringeCheck)
	}
	t.nRoutes++
	return e
}

func (t *Table) deletePC(dest []byte, plen int) (*RouteEntry, bool) {
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
	for {
		si := t.schedule[cur.level]
		startBit := si.tl - si.sl

		if plen <= si.tl {
			threshold := cur.fringeThreshold()
			fringeCheck := cur.level < len(t.schedule)-1
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
			cur.nRoutes--

			target := r
			collapsedRoute := target
			at := cur
			atK := k
			atThreshold := threshold
			atLevel := cur.level

			for len(path) > 0 {
				full := at.nRoutes == 0 && at.nSubtables == 0
				lone := at.nRoutes == 0 && at.nSubtables == 1
				if !full && !lone {
					break
				}
				parent := path[len(path)-1].t
				pIdx := path[len(path)-1].idx
				path = path[:len(path)-1]

				if lone {
					childIdx := at.onlyChildIndex()
					grandchild := at.slots[childIdx].child
					if grandchild.slots[1].route == nil {
						grandchild.slots[1].route = at.slots[1].route
					}
					parent.slots[pIdx].child = grandchild
					t.nSubtables--
					return target, true
				}

				freedDefault := at.slots[1].route
				parent.slots[pIdx].child = nil
				parent.slots[pIdx].route = freedDefault
				parent.nSubtables--
				t.nSubtables--

				collapsedRoute = freedDefault
				at = parent
				atK = pIdx
				atLevel = at.level
				atThreshold = at.fringeThreshold()
			}

			if collapsedRoute == target {
				atFringeCheck := atLevel < len(t.schedule)-1
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
	}
}

func (t *Table) findMatchPC(dest []byte) *RouteEntry {
	cur := t.root
	best := cur.slots[1].route
	for {
		si := t.schedule[cur.level]
		startBit := si.tl - si.sl
		idx := fringeIndexAt(dest, startBit, si.sl)
		s := &cur.slots[idx]
		if s.child != nil {
			child := s.child
			if !cmpAddr(child.cachedAddr, dest, child.cachedLen) {
				return best
			}
			if d := child.slots[1].route; d != nil {
				best = d
			}
			cur = child
			continue
		}
		if s.route != nil {
			return s.route
		}
		return best
	}
}

func (t *Table) findExactMatchPC(dest []byte, plen int) *RouteEntry {
	def := t.root.slots[1].route
	if plen == 0 {
		return def
	}
	cur := t.root
	for {
		si := t.schedule[cur.level]
		startBit := si.tl - si.sl
		if plen <= si.tl {
			fringeCheck := cur.level < len(t.schedule)-1
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
		if !cmpAddr(child.cachedAddr, dest, child.cachedLen) {
			return def
		}
		cur = child
	}
}
