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
	jsoniter "github.com/json-iterator/go"
	"github.com/netobserv/iptally/pkg/api"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GenericMap is one decoded flow record.
type GenericMap map[string]interface{}

// Options are the raw command line / environment inputs; the JSON sections
// are parsed by ParseConfig.
type Options struct {
	Tally        string
	Ingest       string
	SubnetFilter string
	Health       Health
	Profile      Profile
	Metrics      Metrics

	// flag shortcuts overriding the Tally section
	MaxHistogramSize int
	HistogramDump    bool
}

type Health struct {
	Port string
}

type Profile struct {
	Port int
}

type Metrics struct {
	Port int
}

type Ingest struct {
	Type  string          `yaml:"type" json:"type"`
	File  api.IngestFile  `yaml:"file" json:"file"`
	Kafka api.IngestKafka `yaml:"kafka" json:"kafka"`
}

// Config is the unmarshalled representation of the Options JSON sections.
type Config struct {
	Tally        api.Tally
	Ingest       Ingest
	SubnetFilter api.SubnetFilter
}

// ParseConfig creates the internal representation from the Tally, Ingest
// and SubnetFilter json sections and applies defaults.
func ParseConfig(opts *Options) (Config, error) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	cfg := Config{}

	logrus.Debugf("config.Options.Tally = %v", opts.Tally)
	if opts.Tally != "" {
		if err := json.Unmarshal([]byte(opts.Tally), &cfg.Tally); err != nil {
			return cfg, errors.Wrap(err, "error reading tally config")
		}
	}
	if opts.MaxHistogramSize != 0 {
		cfg.Tally.MaxHistogramSize = opts.MaxHistogramSize
	}
	if opts.HistogramDump {
		cfg.Tally.HistogramDump = true
	}
	cfg.Tally.SetDefaults()

	logrus.Debugf("config.Options.Ingest = %v", opts.Ingest)
	if opts.Ingest != "" {
		if err := json.Unmarshal([]byte(opts.Ingest), &cfg.Ingest); err != nil {
			return cfg, errors.Wrap(err, "error reading ingest config")
		}
	}
	if cfg.Ingest.Type == "" {
		cfg.Ingest.Type = "file"
	}

	logrus.Debugf("config.Options.SubnetFilter = %v", opts.SubnetFilter)
	if opts.SubnetFilter != "" {
		if err := json.Unmarshal([]byte(opts.SubnetFilter), &cfg.SubnetFilter); err != nil {
			return cfg, errors.Wrap(err, "error reading subnet filter config")
		}
	}

	return cfg, nil
}
