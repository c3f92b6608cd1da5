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

package ingest

import (
	"context"
	"testing"

	"github.com/netobserv/iptally/pkg/config"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeKafkaReader struct {
	msgs []kafka.Message
}

func (f *fakeKafkaReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(f.msgs) == 0 {
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	m := f.msgs[0]
	f.msgs = f.msgs[1:]
	return m, nil
}

func Test_IngestKafka(t *testing.T) {
	exitChan := make(chan struct{})
	k := &ingestKafka{
		kafkaReader: &fakeKafkaReader{msgs: []kafka.Message{
			{Topic: "flows", Value: []byte(`{"SrcAddr": "10.0.0.1"}`)},
			{Topic: "flows", Value: []byte(`garbage`)},
			{Topic: "flows", Value: []byte(`{"SrcAddr": "10.0.0.2"}`)},
		}},
		exitChan: exitChan,
	}

	var entries []config.GenericMap
	done := make(chan struct{})
	go func() {
		k.Ingest(func(batch []config.GenericMap) {
			for _, e := range batch {
				entries = append(entries, e)
			}
		})
		close(done)
	}()

	close(exitChan)
	<-done

	require.Len(t, entries, 2)
	require.Equal(t, "10.0.0.1", entries[0]["SrcAddr"])
	require.Equal(t, "10.0.0.2", entries[1]["SrcAddr"])
}

func Test_IngestKafkaMissingParams(t *testing.T) {
	cfg := config.Config{}
	cfg.Ingest.Type = "kafka"
	_, err := NewIngester(&cfg)
	require.Error(t, err)
}
