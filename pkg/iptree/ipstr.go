/*
 * Copyright (C) 2022 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package iptree

import (
	"fmt"
	"net/netip"
	"strconv"
)

const (
	ipv4Bits = 32
	ipv6Bits = 128
)

// IsIPv4 reports whether addr holds an embedded IPv4 address, i.e. every
// byte past the fourth is zero. A bare 4-byte key is IPv4 by definition.
func IsIPv4(addr []byte) bool {
	for _, b := range addr[4:] {
		if b != 0 {
			return false
		}
	}
	return true
}

// IPStr renders addr as "a.b.c.d" or RFC 5952 colon-hex, with a "/depth"
// suffix unless the depth covers the full family width.
func IPStr(addr []byte, depth int) string {
	if IsIPv4(addr) {
		s := fmt.Sprintf("%d.%d.%d.%d", addr[0], addr[1], addr[2], addr[3])
		if depth < ipv4Bits {
			s += "/" + strconv.Itoa(depth)
		}
		return s
	}
	a, ok := netip.AddrFromSlice(addr[:AddrBytes])
	if !ok {
		panic("iptree: address buffer shorter than AddrBytes")
	}
	s := a.String()
	if depth < ipv6Bits {
		s += "/" + strconv.Itoa(depth)
	}
	return s
}
