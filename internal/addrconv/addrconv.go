// Package addrconv converts between inet.af/netaddr's address types and the
// fixed 16-byte/plen representation the art engine stores routes in.
package addrconv

import (
	"github.com/pkg/errors"
	"inet.af/netaddr"
)

// ErrUnsupportedFamily is returned when an IPPrefix is neither IPv4 nor IPv6.
var ErrUnsupportedFamily = errors.New("addrconv: unsupported address family")

// ToDest converts p into a left-justified 16-byte destination and its prefix
// length, suitable for Table.NewRoute. IPv4 prefixes occupy the first 4 bytes.
func ToDest(p netaddr.IPPrefix) (dest [16]byte, plen int, err error) {
	ip := p.IP()
	switch {
	case ip.Is4():
		a4 := ip.As4()
		copy(dest[:4], a4[:])
		return dest, int(p.Bits()), nil
	case ip.Is6():
		a16 := ip.As16()
		copy(dest[:], a16[:])
		return dest, int(p.Bits()), nil
	default:
		return dest, 0, errors.Wrapf(ErrUnsupportedFamily, "prefix %v", p)
	}
}

// ToIPv4Prefix reassembles an IPv4 netaddr.IPPrefix from a dest/plen pair as
// stored in a RouteEntry.
func ToIPv4Prefix(dest [16]byte, plen int) netaddr.IPPrefix {
	var a4 [4]byte
	copy(a4[:], dest[:4])
	return netaddr.IPPrefixFrom(netaddr.IPFrom4(a4), uint8(plen))
}

// ToIPv6Prefix reassembles an IPv6 netaddr.IPPrefix from a dest/plen pair as
// stored in a RouteEntry.
func ToIPv6Prefix(dest [16]byte, plen int) netaddr.IPPrefix {
	return netaddr.IPPrefixFrom(netaddr.IPFrom16(dest), uint8(plen))
}

// ParsePrefix parses "addr/len" text in either dotted-quad or colon-hex
// form, as accepted by the data file format described for the route loader.
func ParsePrefix(s string) (netaddr.IPPrefix, error) {
	p, err := netaddr.ParseIPPrefix(s)
	if err != nil {
		return netaddr.IPPrefix{}, errors.Wrapf(err, "parsing prefix %q", s)
	}
	return p, nil
}

// ParseAddr parses bare address text (no prefix length) into an IP.
func ParseAddr(s string) (netaddr.IP, error) {
	ip, err := netaddr.ParseIP(s)
	if err != nil {
		return netaddr.IP{}, errors.Wrapf(err, "parsing address %q", s)
	}
	return ip, nil
}

// ToAddrBytes converts ip into a left-justified 16-byte array the same way
// ToDest does for prefixes, for use with Table.FindMatch/FindExactMatch.
func ToAddrBytes(ip netaddr.IP) (addr [16]byte, err error) {
	switch {
	case ip.Is4():
		a4 := ip.As4()
		copy(addr[:4], a4[:])
		return addr, nil
	case ip.Is6():
		a16 := ip.As16()
		copy(addr[:], a16[:])
		return addr, nil
	default:
		return addr, errors.Wrapf(ErrUnsupportedFamily, "address %v", ip)
	}
}

// FormatPrefix renders dest/plen back as address/length text, using ipv6 to
// pick the rendering family (the engine itself does not track family).
func FormatPrefix(dest [16]byte, plen int, ipv6 bool) string {
	if ipv6 {
		return ToIPv6Prefix(dest, plen).String()
	}
	return ToIPv4Prefix(dest, plen).String()
}
