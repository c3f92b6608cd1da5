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
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/netobserv/iptally/pkg/config"
	"github.com/netobserv/iptally/pkg/test"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, opts config.Options) config.Config {
	t.Helper()
	cfg, err := config.ParseConfig(&opts)
	require.NoError(t, err)
	return cfg
}

func Test_ProcessTalliesBothSides(t *testing.T) {
	cfg := parse(t, config.Options{})
	r, err := New(&cfg)
	require.NoError(t, err)

	r.Process(test.GetTallyMockEntries(5))

	require.Equal(t, uint64(5), r.Records())
	require.Equal(t, uint64(5), r.SrcTree().Sum())
	require.Equal(t, uint64(5), r.DstTree().Sum())
	require.Nil(t, r.PairTree())

	hist := r.SrcTree().Histogram()
	require.Len(t, hist, 1)
	require.Equal(t, "10.0.0.1", hist[0].String())
}

func Test_ProcessWeightField(t *testing.T) {
	cfg := parse(t, config.Options{Tally: `{"weightField": "Bytes"}`})
	r, err := New(&cfg)
	require.NoError(t, err)

	r.Process(test.GetTallyMockEntries(2))

	require.Equal(t, uint64(2*1234), r.SrcTree().Sum())
}

func Test_ProcessPairTree(t *testing.T) {
	cfg := parse(t, config.Options{Tally: `{"pairTree": true}`})
	r, err := New(&cfg)
	require.NoError(t, err)

	r.Process(test.GetTallyMockEntries(3))

	require.NotNil(t, r.PairTree())
	require.Equal(t, uint64(3), r.PairTree().Sum())

	hist := r.PairTree().Histogram()
	require.Len(t, hist, 1)
	require.Equal(t, "10.0.0.1 20.0.0.2", hist[0].PairString())
}

func Test_ProcessMissingAddresses(t *testing.T) {
	cfg := parse(t, config.Options{})
	r, err := New(&cfg)
	require.NoError(t, err)

	r.Process([]config.GenericMap{test.GetTallyMockEntry(true)})

	require.Equal(t, uint64(1), r.Records())
	require.Equal(t, uint64(0), r.SrcTree().Sum())
	require.Equal(t, uint64(1), r.badAddrs)
}

func Test_ProcessIPv6(t *testing.T) {
	cfg := parse(t, config.Options{})
	r, err := New(&cfg)
	require.NoError(t, err)

	entry := test.GetTallyMockEntry(false)
	entry["SrcAddr"] = "2001:db8:1::1"
	r.Process([]config.GenericMap{entry})

	hist := r.SrcTree().Histogram()
	require.Len(t, hist, 1)
	require.Equal(t, 128, hist[0].Depth)
	require.Equal(t, "2001:db8:1::1", hist[0].String())
}

func Test_SubnetFilterKeep(t *testing.T) {
	cfg := parse(t, config.Options{SubnetFilter: `{"cidrs": ["10.0.0.0/8"], "action": "keep"}`})
	r, err := New(&cfg)
	require.NoError(t, err)

	r.Process(test.GetTallyMockEntries(4))

	// sources are in 10/8, destinations are not
	require.Equal(t, uint64(4), r.SrcTree().Sum())
	require.Equal(t, uint64(0), r.DstTree().Sum())
}

func Test_SubnetFilterDrop(t *testing.T) {
	cfg := parse(t, config.Options{SubnetFilter: `{"cidrs": ["10.0.0.0/8"], "action": "drop"}`})
	r, err := New(&cfg)
	require.NoError(t, err)

	r.Process(test.GetTallyMockEntries(4))

	require.Equal(t, uint64(0), r.SrcTree().Sum())
	require.Equal(t, uint64(4), r.DstTree().Sum())
}

func Test_SubnetFilterBadCIDR(t *testing.T) {
	cfg := parse(t, config.Options{SubnetFilter: `{"cidrs": ["10.0.0.0/40"]}`})
	_, err := New(&cfg)
	require.Error(t, err)
}

func Test_ProgressLogUsesClock(t *testing.T) {
	cfg := parse(t, config.Options{})
	mock := clock.NewMock()
	r, err := NewWithClock(&cfg, mock)
	require.NoError(t, err)

	hook := logrustest.NewGlobal()
	defer hook.Reset()

	r.Process(test.GetTallyMockEntries(1))
	for _, e := range hook.AllEntries() {
		require.NotEqual(t, "tally progress", e.Message)
	}

	mock.Add(progressInterval + time.Second)
	r.Process(test.GetTallyMockEntries(1))

	found := false
	for _, e := range hook.AllEntries() {
		if e.Message == "tally progress" {
			found = true
		}
	}
	require.True(t, found)
}

func Test_DumpHistogram(t *testing.T) {
	cfg := parse(t, config.Options{Tally: `{"histogramDump": true, "pairTree": true}`})
	r, err := New(&cfg)
	require.NoError(t, err)

	hook := logrustest.NewGlobal()
	defer hook.Reset()

	r.Process(test.GetTallyMockEntries(2))
	r.Dump(cfg.Tally.HistogramDump)

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	require.Contains(t, messages, "10.0.0.1  count=2")
	require.Contains(t, messages, "10.0.0.1 20.0.0.2  count=2")
}
