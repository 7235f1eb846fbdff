package art

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertedValues(t testing.TB, tbl *Table, order WalkOrder) []string {
	t.Helper()
	var got []string
	err := tbl.Walk(order, func(r *RouteEntry) bool {
		got = append(got, r.Value.(string))
		return true
	})
	require.NoError(t, err)
	return got
}

func TestWalkVisitsEachRouteExactlyOnce(t *testing.T) {
	for _, compressed := range []bool{false, true} {
		tbl, err := New(Config{AddrBits: 32, Strides: []int{8, 8, 8, 8}, Compressed: compressed})
		require.NoError(t, err)

		want := []string{"0.0.0.0/0", "10.0.0.0/8", "10.1.0.0/16", "10.1.2.0/24", "10.1.2.128/25", "192.168.0.0/16"}
		for _, cidr := range want {
			mustInsertCIDR(t, tbl, cidr, cidr)
		}
		require.NoError(t, tbl.Validate())

		for _, order := range []WalkOrder{WalkBFS, WalkDFS} {
			got := insertedValues(t, tbl, order)
			sort.Strings(got)
			wantSorted := append([]string(nil), want...)
			sort.Strings(wantSorted)
			assert.Equal(t, wantSorted, got, "compressed=%v order=%v", compressed, order)
		}
	}
}

func TestWalkStopsEarly(t *testing.T) {
	tbl := newSimpleIPv4Table(t, []int{8, 8, 8, 8})
	mustInsertCIDR(t, tbl, "10.0.0.0/8", "a")
	mustInsertCIDR(t, tbl, "10.1.0.0/16", "b")
	mustInsertCIDR(t, tbl, "10.1.2.0/24", "c")

	n := 0
	err := tbl.Walk(WalkBFS, func(r *RouteEntry) bool {
		n++
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWalkDoesNotReemitAllottedCopies(t *testing.T) {
	// A single /4 allotted across sixteen fringe slots of the root (and
	// the non-fringe slots above them) must surface exactly once from a
	// walk, not once per slot it was propagated into.
	tbl := newSimpleIPv4Table(t, []int{8, 8, 8, 8})
	mustInsertCIDR(t, tbl, "10.0.0.0/4", "ten")
	require.NoError(t, tbl.Validate())

	got := insertedValues(t, tbl, WalkBFS)
	assert.Equal(t, []string{"ten"}, got)
}
