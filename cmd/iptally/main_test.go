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

package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netobserv/iptally/pkg/config"
	"github.com/netobserv/iptally/pkg/ingest"
	"github.com/netobserv/iptally/pkg/report"
)

func TestTallyConfigSetup(t *testing.T) {
	js := `{
    "Tally": "{\"maxHistogramSize\":100000,\"histogramDump\":true,\"pairTree\":true,\"weightField\":\"Bytes\"}",
    "Ingest": "{\"type\":\"file\",\"file\":{\"filename\":\"/dev/null\"}}",
    "SubnetFilter": "{\"cidrs\":[\"10.0.0.0/8\",\"fd00::/8\"],\"action\":\"drop\"}",
    "Health": {
        "Port": "8080"
    },
    "Profile": {
        "Port": 0
    }
}`
	var opts config.Options
	err := json.Unmarshal([]byte(js), &opts)
	require.NoError(t, err)

	cfg, err := config.ParseConfig(&opts)
	require.NoError(t, err)
	require.Equal(t, 100000, cfg.Tally.MaxHistogramSize)

	rep, err := report.New(&cfg)
	require.NoError(t, err)
	require.NotNil(t, rep.PairTree())

	ing, err := ingest.NewIngester(&cfg)
	require.NoError(t, err)
	require.NotNil(t, ing)
}
