package art

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"ipv4 ok", Config{AddrBits: 32, Strides: []int{8, 8, 8, 8}}, true},
		{"ipv6 ok", Config{AddrBits: 128, Strides: []int{16, 16, 16, 16, 16, 16, 16, 16}}, true},
		{"stride sum mismatch", Config{AddrBits: 32, Strides: []int{8, 8, 8}}, false},
		{"stride too wide", Config{AddrBits: 32, Strides: []int{32}}, false},
		{"no strides", Config{AddrBits: 32}, false},
		{"addr bits out of range", Config{AddrBits: 0, Strides: []int{8}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.cfg)
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestNewRouteValidation(t *testing.T) {
	tbl := newSimpleIPv4Table(t, []int{8, 8, 8, 8})

	_, err := tbl.NewRoute(ipv4Bytes("10.0.0.0"), 33, nil)
	assert.ErrorIs(t, err, ErrInvalidPrefix)

	_, err = tbl.NewRoute(nil, 8, nil)
	assert.ErrorIs(t, err, ErrInvalidPrefix)

	e, err := tbl.NewRoute(ipv4Bytes("10.0.0.0"), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, e.Plen)
}

func TestInsertSameDestDifferentValueFirstWriteWins(t *testing.T) {
	tbl := newSimpleIPv4Table(t, []int{8, 8, 8, 8})

	first := mustInsertCIDR(t, tbl, "10.0.0.0/8", "first")
	second := mustInsertCIDR(t, tbl, "10.0.0.0/8", "second")
	assert.Same(t, first, second)
	assert.Equal(t, "first", second.Value)
}

func TestInsertOrderIndependence(t *testing.T) {
	routes := []string{"10.0.0.0/8", "10.1.0.0/16", "10.1.2.0/24", "192.168.0.0/16"}

	tblAB := newSimpleIPv4Table(t, []int{8, 8, 8, 8})
	for _, c := range routes {
		mustInsertCIDR(t, tblAB, c, c)
	}

	reversed := make([]string, len(routes))
	for i, c := range routes {
		reversed[len(routes)-1-i] = c
	}
	tblBA := newSimpleIPv4Table(t, []int{8, 8, 8, 8})
	for _, c := range reversed {
		mustInsertCIDR(t, tblBA, c, c)
	}

	for _, probe := range []string{"10.1.2.3", "10.1.5.5", "10.5.5.5", "192.168.1.1", "8.8.8.8"} {
		a := tblAB.FindMatch(ipv4Bytes(probe))
		b := tblBA.FindMatch(ipv4Bytes(probe))
		if a == nil || b == nil {
			assert.Equal(t, a == nil, b == nil, "probe %s", probe)
			continue
		}
		assert.Equal(t, a.Value, b.Value, "probe %s", probe)
	}
}

func TestDestroyedTableReturnsErrDestroyed(t *testing.T) {
	tbl := newSimpleIPv4Table(t, []int{8, 8, 8, 8})
	mustInsertCIDR(t, tbl, "10.0.0.0/8", "a")
	require.NoError(t, tbl.Destroy())

	_, err := tbl.Insert(&RouteEntry{Plen: 8})
	assert.ErrorIs(t, err, ErrDestroyed)

	_, ok := tbl.Delete(ipv4Bytes("10.0.0.0"), 8)
	assert.False(t, ok)

	assert.Nil(t, tbl.FindMatch(ipv4Bytes("10.0.0.0")))
	assert.Nil(t, tbl.FindExactMatch(ipv4Bytes("10.0.0.0"), 8))

	err = tbl.Flush()
	assert.ErrorIs(t, err, ErrDestroyed)

	err = tbl.Validate()
	assert.ErrorIs(t, err, ErrDestroyed)

	err = tbl.Walk(WalkBFS, func(*RouteEntry) bool { return true })
	assert.ErrorIs(t, err, ErrDestroyed)

	err = tbl.Destroy()
	assert.ErrorIs(t, err, ErrDestroyed)
}

func TestIPv6BasicLPM(t *testing.T) {
	tbl, err := New(Config{AddrBits: 128, Strides: []int{16, 16, 16, 16, 16, 16, 16, 16}, Compressed: true})
	require.NoError(t, err)

	dest := make([]byte, 16)
	dest[0] = 0x20
	dest[1] = 0x01
	e, err := tbl.NewRoute(dest, 32, "2001::/32")
	require.NoError(t, err)
	_, err = tbl.Insert(e)
	require.NoError(t, err)

	probe := make([]byte, 16)
	probe[0] = 0x20
	probe[1] = 0x01
	probe[4] = 0x0d
	probe[5] = 0xb8
	got := tbl.FindMatch(probe)
	require.NotNil(t, got)
	assert.Equal(t, "2001::/32", got.Value)

	require.NoError(t, tbl.Validate())
}
