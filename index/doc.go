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

// Package index - an AVL balanced tree of student style records keyed by
// a fixed length identifier.
//
// Every node caches its height and every insert or delete restores the
// height balance on the way back up the recursion, so lookups and
// mutations stay O(log n).
//
// Note: a tree is not thread safe. Access it from a single goroutine or
// guard it with a mutex.
package index
