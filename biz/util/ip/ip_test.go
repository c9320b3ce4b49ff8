package ip

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPv4(t *testing.T) {
	assert.Len(t, IPv4Hex(), 8)

	addr := IPv4()
	if addr == "" {
		assert.Equal(t, "00000000", IPv4Hex())
		t.Skip("no non-loopback ipv4 interface")
	}
	parsed := net.ParseIP(addr)
	if assert.NotNil(t, parsed) {
		assert.NotNil(t, parsed.To4())
		assert.False(t, parsed.IsLoopback())
	}
}
