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
	"io"
)

// PairAddrBytes is the key width of a pair tree: two full-width addresses
// interleaved bit by bit.
const PairAddrBytes = 2 * AddrBytes

// PairTree tallies joint (source, destination) address pairs in a single
// tree. Bit 2i of a key is bit i of the first address, bit 2i+1 is bit i of
// the second, so a prefix of the interleaved key narrows both addresses at
// once. The counter itself is unchanged.
type PairTree struct {
	Tree
}

// NewPair returns an empty pair tree with a ceiling of maxNodes non-root
// nodes, enforced before each insertion as in New, and DefaultCacheSize
// cache slots.
func NewPair(maxNodes int) *PairTree {
	t := &PairTree{}
	t.root = newNode(nil)
	t.addrBytes = PairAddrBytes
	t.maxNodes = maxNodes
	t.cache = newPathCache(DefaultCacheSize, PairAddrBytes)
	return t
}

// AddPair interleaves the first addrLen bytes of addr1 and addr2 and
// tallies val for the combined key.
func (t *PairTree) AddPair(addr1, addr2 []byte, addrLen int, val uint64) {
	var addr [PairAddrBytes]byte
	for i := 0; i < addrLen*8; i++ {
		if bit(addr1, i) {
			setBit(addr[:], 2*i)
		}
		if bit(addr2, i) {
			setBit(addr[:], 2*i+1)
		}
	}
	t.Add(addr[:], addrLen*2, val)
}

// Deinterleave splits an interleaved key back into its two addresses and
// the per-address prefix depths. A prefix of depth bits covers
// ceil(depth/2) bits of the first address and floor(depth/2) of the second.
func Deinterleave(addr []byte, depth int) (addr1, addr2 []byte, depth1, depth2 int) {
	addr1 = make([]byte, AddrBytes)
	addr2 = make([]byte, AddrBytes)
	for i := 0; i < len(addr)*8/2; i++ {
		if bit(addr, 2*i) {
			setBit(addr1, i)
		}
		if bit(addr, 2*i+1) {
			setBit(addr2, i)
		}
	}
	return addr1, addr2, (depth + 1) / 2, depth / 2
}

// PairStr renders an interleaved prefix as its two component prefixes.
func PairStr(addr []byte, depth int) string {
	addr1, addr2, depth1, depth2 := Deinterleave(addr, depth)
	return IPStr(addr1, depth1) + " " + IPStr(addr2, depth2)
}

// PairString renders a pair-tree histogram entry.
func (e AddrElem) PairString() string {
	return PairStr(e.Addr, e.Depth)
}

// Dump writes the histogram to w, de-interleaving each entry back into its
// address pair.
func (t *PairTree) Dump(w io.Writer) {
	hist := t.Histogram()
	fmt.Fprintf(w, "nodes: %d  histogram size: %d\n", t.nodes, len(hist))
	for _, e := range hist {
		fmt.Fprintf(w, "%s  count=%d\n", e.PairString(), e.Count)
	}
}
