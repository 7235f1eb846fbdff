// Package stats is the external "statistics gathering" collaborator
// spec.md places out of scope for the engine itself: it consumes only
// the engine's public operations to produce a human-readable report,
// mirroring the route/node counters the original harness printed after
// a load or a lookup-test pass.
package stats

import (
	"fmt"
	"strings"

	"github.com/hariguchi/art"
)

// Report summarizes a table's shape at a point in time.
type Report struct {
	Routes      int
	Subtables   int
	Compressed  bool
	PlenHist    map[int]int // prefix length -> route count
	ValidateErr error
}

// Gather walks tbl (BFS) to build a per-prefix-length histogram and
// combines it with the table's own counters and Validate() result.
func Gather(tbl *art.Table, compressed bool) (Report, error) {
	r := Report{
		Routes:     tbl.RouteCount(),
		Subtables:  tbl.SubtableCount(),
		Compressed: compressed,
		PlenHist:   make(map[int]int),
	}
	err := tbl.Walk(art.WalkBFS, func(e *art.RouteEntry) bool {
		r.PlenHist[e.Plen]++
		return true
	})
	if err != nil {
		return r, err
	}
	r.ValidateErr = tbl.Validate()
	return r, nil
}

// String renders the report the way the original harness's menu item 9
// ("make table"/validation pass) printed its summary: a route/subtable
// total followed by a per-prefix-length breakdown.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d routes, %d subtables", r.Routes, r.Subtables)
	if r.Compressed {
		fmt.Fprint(&b, " (path-compressed)")
	} else {
		fmt.Fprint(&b, " (simple)")
	}
	fmt.Fprintln(&b)
	for plen := 0; plen <= 128; plen++ {
		if n, ok := r.PlenHist[plen]; ok {
			fmt.Fprintf(&b, "  /%-3d: %d\n", plen, n)
		}
	}
	if r.ValidateErr != nil {
		fmt.Fprintf(&b, "INVALID: %v\n", r.ValidateErr)
	} else {
		fmt.Fprintln(&b, "structural invariants OK")
	}
	return b.String()
}
