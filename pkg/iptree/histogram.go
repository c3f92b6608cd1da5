/*
 * Copyright (C) 2021 IBM, Inc.
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

// maxHistogramDepth caps descent during traversal: nodes down to depth
// maxHistogramDepth+1 are reported, nothing deeper is visited. Pair trees
// are 256 bits wide, so their histograms truncate at 129 interleaved bits.
const maxHistogramDepth = 128

// AddrElem is one histogram entry: a prefix of Depth bits held in a
// full-width address buffer, and the weight tallied at exactly that prefix.
type AddrElem struct {
	Addr  []byte
	Depth int
	Count uint64
}

func (e AddrElem) IsIPv4() bool {
	return IsIPv4(e.Addr)
}

func (e AddrElem) String() string {
	return IPStr(e.Addr, e.Depth)
}

// Histogram walks the tree in preorder, 0-child before 1-child, and returns
// an entry for every visited node with a nonzero local count. Terminal and
// intermediate (pruned) prefixes both appear; the counts add up to Sum()
// unless weight sits below the depth cap, which only pair trees can reach.
func (t *Tree) Histogram() []AddrElem {
	return t.AppendHistogram(nil)
}

// AppendHistogram appends the histogram entries to hist and returns the
// extended slice.
func (t *Tree) AppendHistogram(hist []AddrElem) []AddrElem {
	addr := make([]byte, t.addrBytes)
	return t.appendHistogram(0, addr, t.root, hist)
}

func (t *Tree) appendHistogram(depth int, addr []byte, n *node, hist []AddrElem) []AddrElem {
	if n.localSum() > 0 {
		elem := AddrElem{Addr: make([]byte, t.addrBytes), Depth: depth, Count: n.localSum()}
		copy(elem.Addr, addr)
		hist = append(hist, elem)
	}
	if depth > maxHistogramDepth {
		return hist
	}

	if n.child0 != nil {
		hist = t.appendHistogram(depth+1, addr, n.child0, hist)
	}
	if n.child1 != nil {
		addr1 := make([]byte, t.addrBytes)
		copy(addr1, addr[:(depth+7)/8])
		setBit(addr1, depth)
		hist = t.appendHistogram(depth+1, addr1, n.child1, hist)
	}
	return hist
}

// Dump writes the histogram to w, one prefix per line. Largely for
// debugging.
func (t *Tree) Dump(w io.Writer) {
	hist := t.Histogram()
	fmt.Fprintf(w, "nodes: %d  histogram size: %d\n", t.nodes, len(hist))
	for _, e := range hist {
		fmt.Fprintf(w, "%s  count=%d\n", e.String(), e.Count)
	}
}

// DumpStats writes the cache counters to w.
func (t *Tree) DumpStats(w io.Writer) {
	fmt.Fprintf(w, "cache_hits: %d\n", t.cache.hits)
	fmt.Fprintf(w, "cache_misses: %d\n", t.cache.misses)
}
