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
	"github.com/netobserv/iptally/pkg/operational"
	"github.com/prometheus/client_golang/prometheus"
)

var recordsTallied = operational.NewCounter(prometheus.CounterOpts{
	Name: "tally_records",
	Help: "Number of flow records tallied",
})

var badAddresses = operational.NewCounter(prometheus.CounterOpts{
	Name: "tally_records_skipped",
	Help: "Number of records that contributed to no tree: address missing, unparsable or filtered out on both sides",
})

var treeNodes = operational.NewGaugeVec(prometheus.GaugeOpts{
	Name: "tally_tree_nodes",
	Help: "Live nodes per address tree",
}, []string{"tree"})

var treePruned = operational.NewGaugeVec(prometheus.GaugeOpts{
	Name: "tally_tree_pruned_nodes",
	Help: "Nodes removed by pruning per address tree",
}, []string{"tree"})

func observeTree(name string, t *iptree.Tree) {
	treeNodes.WithLabelValues(name).Set(float64(t.Size()))
	treePruned.WithLabelValues(name).Set(float64(t.Stats().Pruned))
}

func (r *Report) observeTrees() {
	observeTree("src", r.srcTree)
	observeTree("dst", r.dstTree)
	if r.pairTree != nil {
		observeTree("pair", &r.pairTree.Tree)
	}
}
