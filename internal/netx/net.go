// Package netx contains small networking helpers shared across components.
package netx

import "regexp"

var ipv4Pattern = regexp.MustCompile(`(\d+\.\d+\.\d+\.\d+)`)

// ExtractIPv4 returns the first dotted-decimal IPv4 address found in addr,
// or an empty string if there is none. Reported client addresses may carry
// a port suffix or an IPv4-mapped IPv6 prefix ("::ffff:10.0.0.1"); both
// still yield the embedded IPv4 address.
func ExtractIPv4(addr string) string {
	return ipv4Pattern.FindString(addr)
}
