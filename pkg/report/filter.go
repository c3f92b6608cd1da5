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
	"fmt"
	"net/netip"

	"github.com/gaissmai/bart"
	"github.com/netobserv/iptally/pkg/api"
)

// subnetFilter decides which addresses take part in the tally. A nil
// filter keeps everything.
type subnetFilter struct {
	table *bart.Lite
	drop  bool
}

func newSubnetFilter(cfg *api.SubnetFilter) (*subnetFilter, error) {
	if len(cfg.CIDRs) == 0 {
		return nil, nil
	}
	table := new(bart.Lite)
	for _, cidr := range cfg.CIDRs {
		parsed, err := netip.ParsePrefix(cidr)
		if err != nil {
			return nil, fmt.Errorf("subnet filter: fail to parse CIDR %q: %w", cidr, err)
		}
		table.Insert(parsed)
	}
	switch cfg.Action {
	case api.SubnetFilterKeep, "":
		return &subnetFilter{table: table}, nil
	case api.SubnetFilterDrop:
		return &subnetFilter{table: table, drop: true}, nil
	}
	return nil, fmt.Errorf("subnet filter: unknown action %q", cfg.Action)
}

func (f *subnetFilter) keep(ip netip.Addr) bool {
	if f == nil {
		return true
	}
	return f.table.Contains(ip) != f.drop
}
