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

type SubnetFilterAction string

const (
	SubnetFilterKeep SubnetFilterAction = "keep"
	SubnetFilterDrop SubnetFilterAction = "drop"
)

type SubnetFilter struct {
	CIDRs  []string           `yaml:"cidrs" json:"cidrs" doc:"list of CIDRs matched against each address"`
	Action SubnetFilterAction `yaml:"action" json:"action" doc:"keep: tally only matching addresses; drop: tally only the rest"`
}
