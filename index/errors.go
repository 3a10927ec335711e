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

import "errors"

var (
	// ErrInvalidInput is returned when a key or name fails its format check.
	// The tree is never touched in that case.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate is returned by Insert when the key is already present.
	ErrDuplicate = errors.New("duplicate key")

	// ErrNotFound is returned when no record matches a key or name.
	ErrNotFound = errors.New("not found")

	// ErrOutOfRange is returned by DeleteAt for a rank outside [0, Count()).
	ErrOutOfRange = errors.New("position out of range")

	// ErrCorrupt is returned by Check when an invariant does not hold.
	ErrCorrupt = errors.New("tree corrupt")
)
