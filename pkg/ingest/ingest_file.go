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
	"bufio"
	"os"

	"github.com/netobserv/iptally/pkg/config"
	"github.com/netobserv/iptally/pkg/utils"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type ingestFile struct {
	fileName string
	loop     bool
	exitChan chan struct{}
}

// Ingest reads the whole file, feeds the decoded records to process and, in
// loop mode, replays them until told to exit.
func (f *ingestFile) Ingest(process ProcessFunction) {
	file, err := os.Open(f.fileName)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = file.Close()
	}()

	entries := make([]config.GenericMap, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if entry := decodeLine(scanner.Bytes()); entry != nil {
			entries = append(entries, entry)
		}
	}
	log.Infof("Ingesting %d records from %s", len(entries), f.fileName)

	if !f.loop {
		linesProcessed.Add(float64(len(entries)))
		process(entries)
		return
	}
	for {
		select {
		case <-f.exitChan:
			log.Debugf("exiting ingestFile because of signal")
			return
		default:
			linesProcessed.Add(float64(len(entries)))
			process(entries)
		}
	}
}

// NewIngestFile creates a file ingester.
func NewIngestFile(cfg *config.Config) (Ingester, error) {
	if cfg.Ingest.File.Filename == "" {
		return nil, errors.New("ingest filename not specified")
	}
	log.Infof("input file name = %s", cfg.Ingest.File.Filename)

	ch := make(chan struct{})
	utils.RegisterExitChannel(ch)
	return &ingestFile{
		fileName: cfg.Ingest.File.Filename,
		loop:     cfg.Ingest.File.Loop,
		exitChan: ch,
	}, nil
}
