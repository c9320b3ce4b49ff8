package ip

import (
	"encoding/hex"
	"net"
	"runtime"
)

// IPv4 returns the first non-loopback IPv4 address of the host, or "".
func IPv4() string {
	if v4 := localIPv4(); v4 != nil {
		return v4.String()
	}
	return ""
}

// IPv4Hex is IPv4 as eight hex digits; "00000000" when none is found.
func IPv4Hex() string {
	if v4 := localIPv4(); v4 != nil {
		return hex.EncodeToString(v4)
	}
	return "00000000"
}

func localIPv4() net.IP {
	if runtime.GOOS == "windows" {
		return nil
	}
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if v4 := ipNet.IP.To4(); v4 != nil {
			return v4
		}
	}
	return nil
}
