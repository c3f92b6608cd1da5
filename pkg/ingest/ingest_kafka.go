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

	"github.com/netobserv/iptally/pkg/api"
	"github.com/netobserv/iptally/pkg/config"
	"github.com/netobserv/iptally/pkg/utils"
	"github.com/pkg/errors"
	kafka "github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

type kafkaReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ingestKafka struct {
	kafkaParams api.IngestKafka
	kafkaReader kafkaReader
	exitChan    chan struct{}
}

// Ingest reads flow records from the kafka topic until told to exit.
func (k *ingestKafka) Ingest(process ProcessFunction) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-k.exitChan
		log.Debugf("exiting ingestKafka because of signal")
		cancel()
	}()

	batch := make([]config.GenericMap, 1)
	for {
		m, err := k.kafkaReader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Errorln(err)
			continue
		}
		log.Debugf("message at topic:%v partition:%v offset:%v", m.Topic, m.Partition, m.Offset)
		entry := decodeLine(m.Value)
		if entry == nil {
			continue
		}
		linesProcessed.Inc()
		batch[0] = entry
		process(batch)
	}
}

// NewIngestKafka creates a kafka ingester.
func NewIngestKafka(cfg *config.Config) (Ingester, error) {
	params := cfg.Ingest.Kafka
	if len(params.Brokers) == 0 || params.Topic == "" {
		return nil, errors.New("ingest kafka brokers and topic must be specified")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: params.Brokers,
		Topic:   params.Topic,
		GroupID: params.GroupID,
	})

	ch := make(chan struct{})
	utils.RegisterExitChannel(ch)
	return &ingestKafka{
		kafkaParams: params,
		kafkaReader: reader,
		exitChan:    ch,
	}, nil
}
