package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hariguchi/art"
)

func TestGatherReportsCountersAndHistogram(t *testing.T) {
	tbl, err := art.New(art.Config{AddrBits: 32, Strides: []int{8, 8, 8, 8}, Compressed: true})
	require.NoError(t, err)

	for _, cidr := range []struct {
		addr [4]byte
		plen int
	}{
		{[4]byte{0, 0, 0, 0}, 0},
		{[4]byte{10, 0, 0, 0}, 8},
		{[4]byte{10, 1, 0, 0}, 16},
	} {
		e, err := tbl.NewRoute(cidr.addr[:], cidr.plen, nil)
		require.NoError(t, err)
		_, err = tbl.Insert(e)
		require.NoError(t, err)
	}

	r, err := Gather(tbl, true)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Routes)
	assert.NoError(t, r.ValidateErr)
	assert.Equal(t, 1, r.PlenHist[0])
	assert.Equal(t, 1, r.PlenHist[8])
	assert.Equal(t, 1, r.PlenHist[16])

	s := r.String()
	assert.True(t, strings.Contains(s, "3 routes"))
	assert.True(t, strings.Contains(s, "structural invariants OK"))
}
