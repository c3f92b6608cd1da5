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

package api

const DefaultMaxHistogramSize = 1000000

type Tally struct {
	MaxHistogramSize int    `yaml:"maxHistogramSize" json:"maxHistogramSize" doc:"node ceiling per address tree; non-positive values reset to 1000000"`
	HistogramDump    bool   `yaml:"histogramDump" json:"histogramDump" doc:"dump the histograms to the log at the end of the run"`
	CacheSize        int    `yaml:"cacheSize" json:"cacheSize" doc:"insertion path cache slots of the source and destination trees (default 4); the pair tree always uses 4"`
	PairTree         bool   `yaml:"pairTree" json:"pairTree" doc:"also tally joint (source,destination) address pairs"`
	SrcField         string `yaml:"srcField" json:"srcField" doc:"record key holding the source address (default SrcAddr)"`
	DstField         string `yaml:"dstField" json:"dstField" doc:"record key holding the destination address (default DstAddr)"`
	WeightField      string `yaml:"weightField" json:"weightField" doc:"record key holding the weight per record, e.g. Bytes; empty tallies 1 per record"`
}

// SetDefaults fills the zero values callers are allowed to omit.
func (t *Tally) SetDefaults() {
	if t.MaxHistogramSize <= 0 {
		t.MaxHistogramSize = DefaultMaxHistogramSize
	}
	if t.CacheSize == 0 {
		t.CacheSize = 4
	} else if t.CacheSize < 0 {
		// negative disables the cache entirely
		t.CacheSize = 0
	}
	if t.SrcField == "" {
		t.SrcField = "SrcAddr"
	}
	if t.DstField == "" {
		t.DstField = "DstAddr"
	}
}
