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

package config

import (
	"testing"

	"github.com/netobserv/iptally/pkg/api"
	"github.com/stretchr/testify/require"
)

func Test_ParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(&Options{})
	require.NoError(t, err)
	require.Equal(t, api.DefaultMaxHistogramSize, cfg.Tally.MaxHistogramSize)
	require.Equal(t, 4, cfg.Tally.CacheSize)
	require.Equal(t, "SrcAddr", cfg.Tally.SrcField)
	require.Equal(t, "DstAddr", cfg.Tally.DstField)
	require.Equal(t, "file", cfg.Ingest.Type)
}

func Test_ParseConfigNonPositiveSizeResets(t *testing.T) {
	cfg, err := ParseConfig(&Options{Tally: `{"maxHistogramSize": -5}`})
	require.NoError(t, err)
	require.Equal(t, api.DefaultMaxHistogramSize, cfg.Tally.MaxHistogramSize)
}

func Test_ParseConfigSections(t *testing.T) {
	opts := Options{
		Tally:        `{"maxHistogramSize": 1000, "histogramDump": true, "pairTree": true, "weightField": "Bytes"}`,
		Ingest:       `{"type": "kafka", "kafka": {"brokers": ["localhost:9092"], "topic": "flows", "groupid": "iptally"}}`,
		SubnetFilter: `{"cidrs": ["10.0.0.0/8"], "action": "keep"}`,
	}
	cfg, err := ParseConfig(&opts)
	require.NoError(t, err)
	require.Equal(t, 1000, cfg.Tally.MaxHistogramSize)
	require.True(t, cfg.Tally.HistogramDump)
	require.True(t, cfg.Tally.PairTree)
	require.Equal(t, "Bytes", cfg.Tally.WeightField)
	require.Equal(t, "kafka", cfg.Ingest.Type)
	require.Equal(t, []string{"localhost:9092"}, cfg.Ingest.Kafka.Brokers)
	require.Equal(t, api.SubnetFilterKeep, cfg.SubnetFilter.Action)
}

func Test_ParseConfigFlagOverrides(t *testing.T) {
	cfg, err := ParseConfig(&Options{
		Tally:            `{"maxHistogramSize": 1000}`,
		MaxHistogramSize: 2000,
		HistogramDump:    true,
	})
	require.NoError(t, err)
	require.Equal(t, 2000, cfg.Tally.MaxHistogramSize)
	require.True(t, cfg.Tally.HistogramDump)

	// a negative override resets to the default like any other value
	cfg, err = ParseConfig(&Options{MaxHistogramSize: -1})
	require.NoError(t, err)
	require.Equal(t, api.DefaultMaxHistogramSize, cfg.Tally.MaxHistogramSize)
}

func Test_ParseConfigBadJSON(t *testing.T) {
	_, err := ParseConfig(&Options{Tally: `{not json`})
	require.Error(t, err)
	require.Contains(t, err.Error(), "tally")
}
