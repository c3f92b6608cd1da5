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

package iptree

// bit returns bit i of addr; bit 0 is the most significant bit of byte 0.
func bit(addr []byte, i int) bool {
	return addr[i/8]&(1<<(7-i%8)) != 0
}

// setBit sets bit i of addr to 1.
func setBit(addr []byte, i int) {
	addr[i/8] |= 1 << (7 - i%8)
}
