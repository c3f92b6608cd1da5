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
	"github.com/netobserv/iptally/pkg/operational"
	"github.com/prometheus/client_golang/prometheus"
)

var linesProcessed = operational.NewCounter(prometheus.CounterOpts{
	Name: "ingest_flow_records_processed",
	Help: "Number of flow records read from the ingest source",
})

var decodeErrors = operational.NewCounter(prometheus.CounterOpts{
	Name: "ingest_decode_errors",
	Help: "Number of records that could not be decoded",
})
