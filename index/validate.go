// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

// KeyLength is the exact number of characters of every record key.
const KeyLength = 8

// ValidName reports whether name is non-empty and made only of ASCII
// letters and spaces.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isAlpha(c) && c != ' ' {
			return false
		}
	}
	return true
}

// ValidInsertKey reports whether key may be inserted: only its length is
// checked, so an 8 character key with non digits is accepted here.
func ValidInsertKey(key string) bool {
	return len(key) == KeyLength
}

// ValidKey reports whether key is usable for lookup and removal: exactly
// KeyLength decimal digits.
func ValidKey(key string) bool {
	if len(key) != KeyLength {
		return false
	}
	for i := 0; i < len(key); i++ {
		if !isDigit(key[i]) {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
