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

// Package iptree maintains a running tally of IP addresses seen, bounded in
// memory. Counts are stored in a binary radix tree keyed by address bits;
// when the node count reaches the configured ceiling the tree collapses its
// least-informative terminal prefixes upward, preserving totals while
// shedding resolution. A single tree holds both families, IPv4 embedded in
// the leading bytes of the 16-byte form.
package iptree

// AddrBytes is the key width of a single-address tree. IPv4 keys occupy the
// first four bytes, the trailing bytes stay zero.
const AddrBytes = 16

// noCopy makes `go vet` flag trees passed or assigned by value. Copying a
// tree is not supported: node parent links cannot be duplicated.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Tree is a memory-bounded radix counter. It is not safe for concurrent
// use; shard per goroutine and merge, or lock externally.
type Tree struct {
	noCopy noCopy //nolint:unused

	root      *node
	addrBytes int
	nodes     int // live nodes, the root excluded
	maxNodes  int
	added     uint64
	pruned    uint64
	cache     *pathCache
}

// Stats are the tree's ingestion counters.
type Stats struct {
	CacheHits   uint64
	CacheMisses uint64
	Added       uint64
	Pruned      uint64
}

// New returns an empty 16-byte-wide tree with a ceiling of maxNodes non-root
// nodes and the default insertion cache. The ceiling is enforced before each
// insertion, so an Add can leave up to one node per address bit above it.
func New(maxNodes int) *Tree {
	return newTree(maxNodes, AddrBytes, DefaultCacheSize)
}

// NewWithCacheSize is New with an explicit cache capacity. Zero disables
// the cache.
func NewWithCacheSize(maxNodes, cacheSize int) *Tree {
	return newTree(maxNodes, AddrBytes, cacheSize)
}

func newTree(maxNodes, addrBytes, cacheSize int) *Tree {
	return &Tree{
		root:      newNode(nil),
		addrBytes: addrBytes,
		maxNodes:  maxNodes,
		cache:     newPathCache(cacheSize, addrBytes),
	}
}

// Size returns the number of live nodes, excluding the root.
func (t *Tree) Size() int {
	return t.nodes
}

// MaxNodes returns the configured node ceiling.
func (t *Tree) MaxNodes() int {
	return t.maxNodes
}

// Sum returns the total weight added so far. Pruning never changes it.
func (t *Tree) Sum() uint64 {
	return t.root.sum()
}

// Stats returns the cache and prune counters.
func (t *Tree) Stats() Stats {
	return Stats{
		CacheHits:   t.cache.hits,
		CacheMisses: t.cache.misses,
		Added:       t.added,
		Pruned:      t.pruned,
	}
}

// Add tallies val for the address made of the first addrLen bytes of addr.
// addrLen is clamped to the tree width; a zero length tallies at the root.
// Use val 1 to count packets, or the byte count to weigh by volume.
func (t *Tree) Add(addr []byte, addrLen int, val uint64) {
	t.PruneIfGreater(t.maxNodes)
	if addrLen > t.addrBytes {
		addrLen = t.addrBytes
	}
	addrBits := addrLen * 8

	if n := t.cache.lookup(addr, addrLen); n != nil {
		n.add(val)
		return
	}

	ptr := t.root
	for depth := 0; depth < addrBits; depth++ {
		if !bit(addr, depth) {
			if ptr.child0 == nil {
				ptr.child0 = newNode(ptr)
				t.nodes++
				t.added++
			}
			ptr = ptr.child0
		} else {
			if ptr.child1 == nil {
				ptr.child1 = newNode(ptr)
				t.nodes++
				t.added++
			}
			ptr = ptr.child1
		}
	}
	ptr.add(val)
	t.cache.insert(addr, addrLen, ptr)
}

// Prune collapses the single least-informative prunable node: its terminal
// children fold their counts into it and are released. Returns the number
// of collapses performed, 0 when the tree has nothing left to collapse.
func (t *Tree) Prune() int {
	if t.root.isTerminal() || t.root.children() == 0 {
		return 0
	}
	best := t.root.bestToPrune(0)
	return t.collapse(best.node)
}

// PruneIfGreater prunes, once the node count reaches limit, until it drops
// to 90% of the ceiling. The slack avoids re-pruning on every insertion.
func (t *Tree) PruneIfGreater(limit int) {
	if t.nodes >= limit {
		for t.nodes > t.maxNodes*9/10 {
			if t.Prune() == 0 {
				break
			}
		}
	}
}

// collapse folds n's children into n. Both children must be terminal; n
// itself becomes terminal.
func (t *Tree) collapse(n *node) int {
	if n.child0 != nil {
		if !n.child0.isTerminal() {
			panic("iptree: collapsing a non-terminal child")
		}
		n.local += n.child0.local
		t.cache.invalidate(n.child0)
		n.child0 = nil
		t.nodes--
		t.pruned++
	}
	if n.child1 != nil {
		if !n.child1.isTerminal() {
			panic("iptree: collapsing a non-terminal child")
		}
		n.local += n.child1.local
		t.cache.invalidate(n.child1)
		n.child1 = nil
		t.nodes--
		t.pruned++
	}
	return 1
}
