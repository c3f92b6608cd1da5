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

package ingest

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/netobserv/iptally/pkg/config"
	log "github.com/sirupsen/logrus"
)

// ProcessFunction consumes a batch of decoded flow records.
type ProcessFunction func(entries []config.GenericMap)

type Ingester interface {
	// Ingest reads flow records from the source and feeds them to process.
	// It returns when the source is exhausted or the exit channel closes.
	Ingest(process ProcessFunction)
}

// NewIngester creates the ingester selected by the configuration.
func NewIngester(cfg *config.Config) (Ingester, error) {
	switch cfg.Ingest.Type {
	case "file":
		return NewIngestFile(cfg)
	case "kafka":
		return NewIngestKafka(cfg)
	}
	return nil, fmt.Errorf("unknown ingest type %q", cfg.Ingest.Type)
}

// decodeLine turns one JSON flow record into a GenericMap, nil if the line
// does not parse.
func decodeLine(line []byte) config.GenericMap {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	entry := config.GenericMap{}
	if err := json.Unmarshal(line, &entry); err != nil {
		decodeErrors.Inc()
		log.Debugf("ignoring undecodable record %q: %v", line, err)
		return nil
	}
	return entry
}
