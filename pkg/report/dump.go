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
	"github.com/netobserv/iptally/pkg/iptree"
	log "github.com/sirupsen/logrus"
)

// Dump writes the final statistics to the log, and the full histograms too
// when histogramDump is set.
func (r *Report) Dump(histogramDump bool) {
	r.dumpStats("src", r.srcTree)
	r.dumpStats("dst", r.dstTree)
	if r.pairTree != nil {
		r.dumpStats("pair", &r.pairTree.Tree)
	}

	if !histogramDump {
		return
	}
	r.dumpHistogram("src", r.srcTree.Histogram(), false)
	r.dumpHistogram("dst", r.dstTree.Histogram(), false)
	if r.pairTree != nil {
		r.dumpHistogram("pair", r.pairTree.Histogram(), true)
	}
}

func (r *Report) dumpStats(name string, t *iptree.Tree) {
	stats := t.Stats()
	log.WithFields(log.Fields{
		"tree":        name,
		"nodes":       t.Size(),
		"sum":         t.Sum(),
		"added":       stats.Added,
		"pruned":      stats.Pruned,
		"cacheHits":   stats.CacheHits,
		"cacheMisses": stats.CacheMisses,
	}).Info("tally stats")
}

func (r *Report) dumpHistogram(name string, hist []iptree.AddrElem, pair bool) {
	log.Infof("%s histogram: %d entries", name, len(hist))
	for _, e := range hist {
		if pair {
			log.Infof("%s  count=%d", e.PairString(), e.Count)
		} else {
			log.Infof("%s  count=%d", e.String(), e.Count)
		}
	}
}
