package frontend

import "net/netip"

// ParseAddr parses a datanode address of the form "ip:port".
// A malformed address yields a ParseAddr error that carries the literal input.
func ParseAddr(addr string) (netip.AddrPort, error) {
	ap, err := netip.ParseAddrPort(addr)
	if err != nil {
		return netip.AddrPort{}, parseAddrError(1, addr, err)
	}
	return ap, nil
}

// CheckRegionKeys verifies that a partition rule received the number of
// region keys it expects.
func CheckRegionKeys(expect int, keys []string) error {
	if len(keys) != expect {
		return regionKeysSize(1, expect, len(keys))
	}
	return nil
}
