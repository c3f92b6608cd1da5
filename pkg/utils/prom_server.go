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

package utils

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// StartPromServer exposes the operational metrics on the usual /metrics
// endpoint.
func StartPromServer(port int, server *http.Server) {
	log.Debugf("entering StartPromServer")
	server.Addr = fmt.Sprintf(":%v", port)
	log.Infof("Prometheus server: addr = %s", server.Addr)

	http.Handle("/metrics", promhttp.Handler())

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Errorf("error in http.ListenAndServe: %v", err)
	}
}
