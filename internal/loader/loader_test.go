package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hariguchi/art"
	"github.com/hariguchi/art/internal/addrconv"
)

func newIPv4Table(t testing.TB) *art.Table {
	t.Helper()
	tbl, err := art.New(art.Config{AddrBits: 32, Strides: []int{8, 8, 8, 8}, Compressed: true})
	require.NoError(t, err)
	return tbl
}

func TestLoadBasic(t *testing.T) {
	tbl := newIPv4Table(t)
	data := `
# a comment
0.0.0.0/0 default-route

10.0.0.0/8 ten
10.1.0.0/16
not-a-prefix-line
10.0.0.0/8 duplicate-of-ten
`
	st, err := Load(tbl, strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 3, st.Inserted)
	assert.Equal(t, 1, st.Duplicate)
	assert.Equal(t, 1, st.Skipped)

	ip, err := addrconv.ParseAddr("10.2.3.4")
	require.NoError(t, err)
	addr, err := addrconv.ToAddrBytes(ip)
	require.NoError(t, err)
	got := tbl.FindMatch(addr[:])
	require.NotNil(t, got)
	assert.Equal(t, "ten", got.Value)
}

func TestLoadBadPrefixReturnsLineNumberedError(t *testing.T) {
	tbl := newIPv4Table(t)
	data := "10.0.0.0/8 ok\nbogus/notanumber\n"
	_, err := Load(tbl, strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
