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

package api

const TagYaml = "yaml"
const TagDoc = "doc"

type API struct {
	Tally        Tally        `yaml:"tally" doc:"## Tally API\nFollowing is the supported API format for the address tally:\n"`
	IngestFile   IngestFile   `yaml:"file" doc:"## Ingest file API\nFollowing is the supported API format for file ingest:\n"`
	IngestKafka  IngestKafka  `yaml:"kafka" doc:"## Ingest Kafka API\nFollowing is the supported API format for the kafka ingest:\n"`
	SubnetFilter SubnetFilter `yaml:"subnetFilter" doc:"## Subnet filter API\nFollowing is the supported API format for subnet filtering:\n"`
}
