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

package test

import (
	"github.com/netobserv/iptally/pkg/config"
)

// GetTallyMockEntry returns a flow record the way the ingest decoders
// produce them. With missingAddrs set, both address keys are absent.
func GetTallyMockEntry(missingAddrs bool) config.GenericMap {
	entry := config.GenericMap{
		"SrcPort":  float64(11777),
		"DstPort":  float64(22),
		"Proto":    float64(6),
		"Bytes":    float64(1234),
		"Packets":  float64(3),
		"FlowType": "ipv4",
	}
	if !missingAddrs {
		entry["SrcAddr"] = "10.0.0.1"
		entry["DstAddr"] = "20.0.0.2"
	}
	return entry
}

// GetTallyMockEntries returns n copies of the mock record.
func GetTallyMockEntries(n int) []config.GenericMap {
	entries := make([]config.GenericMap, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, GetTallyMockEntry(false))
	}
	return entries
}
