package addrconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"inet.af/netaddr"
)

func TestToDestRoundTripIPv4(t *testing.T) {
	p := netaddr.MustParseIPPrefix("10.1.2.0/24")
	dest, plen, err := ToDest(p)
	require.NoError(t, err)
	assert.Equal(t, 24, plen)

	got := ToIPv4Prefix(dest, plen)
	assert.Equal(t, p, got)
}

func TestToDestRoundTripIPv6(t *testing.T) {
	p := netaddr.MustParseIPPrefix("2001:db8::/32")
	dest, plen, err := ToDest(p)
	require.NoError(t, err)
	assert.Equal(t, 32, plen)

	got := ToIPv6Prefix(dest, plen)
	assert.Equal(t, p, got)
}

func TestParsePrefixInvalid(t *testing.T) {
	_, err := ParsePrefix("not-a-prefix")
	assert.Error(t, err)
}

func TestToAddrBytes(t *testing.T) {
	ip := netaddr.MustParseIP("192.168.1.1")
	addr, err := ToAddrBytes(ip)
	require.NoError(t, err)
	assert.Equal(t, byte(192), addr[0])
	assert.Equal(t, byte(1), addr[3])
}
