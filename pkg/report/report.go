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

package report

import (
	"net/netip"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/mitchellh/mapstructure"
	"github.com/netobserv/iptally/pkg/config"
	"github.com/netobserv/iptally/pkg/iptree"
	log "github.com/sirupsen/logrus"
)

const progressInterval = 30 * time.Second

// Report tallies the source, destination and optionally joint address
// prefixes of every ingested flow record.
type Report struct {
	cfg      config.Config
	filter   *subnetFilter
	srcTree  *iptree.Tree
	dstTree  *iptree.Tree
	pairTree *iptree.PairTree

	clock    clock.Clock
	nextLog  time.Time
	records  uint64
	badAddrs uint64
}

// New creates a report whose trees each have a node ceiling of
// cfg.Tally.MaxHistogramSize, enforced before every insertion.
func New(cfg *config.Config) (*Report, error) {
	return NewWithClock(cfg, clock.New())
}

// NewWithClock is New with an injectable clock, for tests.
func NewWithClock(cfg *config.Config, clk clock.Clock) (*Report, error) {
	filter, err := newSubnetFilter(&cfg.SubnetFilter)
	if err != nil {
		return nil, err
	}
	r := &Report{
		cfg:     *cfg,
		filter:  filter,
		srcTree: iptree.NewWithCacheSize(cfg.Tally.MaxHistogramSize, cfg.Tally.CacheSize),
		dstTree: iptree.NewWithCacheSize(cfg.Tally.MaxHistogramSize, cfg.Tally.CacheSize),
		clock:   clk,
		nextLog: clk.Now().Add(progressInterval),
	}
	if cfg.Tally.PairTree {
		r.pairTree = iptree.NewPair(cfg.Tally.MaxHistogramSize)
	}
	return r, nil
}

// Process tallies a batch of records; it is the ingester's ProcessFunction.
func (r *Report) Process(entries []config.GenericMap) {
	for _, entry := range entries {
		r.ingest(entry)
	}
	if now := r.clock.Now(); now.After(r.nextLog) {
		r.nextLog = now.Add(progressInterval)
		r.logProgress()
	}
}

// ingest decodes one record and feeds the trees. Records without a valid
// address on either side are counted and skipped.
func (r *Report) ingest(entry config.GenericMap) {
	r.records++
	recordsTallied.Inc()

	weight := r.weightOf(entry)
	if weight == 0 {
		// a weightless record must not grow the trees: every leaf carries
		// a positive count
		return
	}
	src, srcLen, srcOK := r.addressOf(entry, r.cfg.Tally.SrcField)
	dst, dstLen, dstOK := r.addressOf(entry, r.cfg.Tally.DstField)
	if !srcOK && !dstOK {
		r.badAddrs++
		badAddresses.Inc()
		return
	}

	if srcOK {
		r.srcTree.Add(src, srcLen, weight)
	}
	if dstOK {
		r.dstTree.Add(dst, dstLen, weight)
	}
	if r.pairTree != nil && srcOK && dstOK {
		pairLen := srcLen
		if dstLen > pairLen {
			pairLen = dstLen
		}
		r.pairTree.AddPair(src, dst, pairLen, weight)
	}
	r.observeTrees()
}

// addressOf extracts and parses the record key, returning the address
// embedded in the 16-byte canonical form and its significant length.
func (r *Report) addressOf(entry config.GenericMap, field string) ([]byte, int, bool) {
	raw, ok := entry[field]
	if !ok {
		return nil, 0, false
	}
	var s string
	if err := mapstructure.WeakDecode(raw, &s); err != nil {
		return nil, 0, false
	}
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return nil, 0, false
	}
	if !r.filter.keep(ip) {
		return nil, 0, false
	}

	addr := make([]byte, iptree.AddrBytes)
	if ip.Is4() {
		v4 := ip.As4()
		copy(addr, v4[:])
		return addr, 4, true
	}
	v6 := ip.As16()
	copy(addr, v6[:])
	return addr, iptree.AddrBytes, true
}

// weightOf reads the configured weight field, defaulting to 1 per record.
func (r *Report) weightOf(entry config.GenericMap) uint64 {
	if r.cfg.Tally.WeightField == "" {
		return 1
	}
	raw, ok := entry[r.cfg.Tally.WeightField]
	if !ok {
		return 1
	}
	var w uint64
	if err := mapstructure.WeakDecode(raw, &w); err != nil {
		log.Debugf("ignoring weight %v: %v", raw, err)
		return 1
	}
	return w
}

func (r *Report) logProgress() {
	log.WithFields(log.Fields{
		"records":  r.records,
		"srcNodes": r.srcTree.Size(),
		"dstNodes": r.dstTree.Size(),
		"srcSum":   r.srcTree.Sum(),
		"dstSum":   r.dstTree.Sum(),
	}).Info("tally progress")
}

// Records returns the number of ingested records.
func (r *Report) Records() uint64 {
	return r.records
}

// SrcTree returns the source address tree.
func (r *Report) SrcTree() *iptree.Tree {
	return r.srcTree
}

// DstTree returns the destination address tree.
func (r *Report) DstTree() *iptree.Tree {
	return r.dstTree
}

// PairTree returns the joint tree, nil unless configured.
func (r *Report) PairTree() *iptree.PairTree {
	return r.pairTree
}
