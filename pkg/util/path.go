// Copyright The Churchroad Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"slices"
	"strings"
)

// Path describes the position of a component within a design hierarchy, such
// as a multiplexer nested within a slice.  Paths are immutable: extending a
// path yields a fresh path, leaving the original untouched.  Every named
// symbolic value in a design derives its name from the path of the component
// which owns it, which is how name collisions between sibling components are
// avoided.
type Path struct {
	// Segments in the path, outermost first.
	segments []string
}

// NewPath constructs a path from the given segments.
func NewPath(segments ...string) Path {
	return Path{segments}
}

// Depth returns the number of segments in this path (a.k.a its depth).
func (p Path) Depth() uint {
	return uint(len(p.segments))
}

// Tail returns the last (i.e. innermost) segment in this path.
func (p Path) Tail() string {
	n := len(p.segments) - 1
	return p.segments[n]
}

// Equals determines whether two paths are the same.
func (p Path) Equals(other Path) bool {
	return slices.Equal(p.segments, other.segments)
}

// PrefixOf checks whether this path is a prefix of the other.
func (p Path) PrefixOf(other Path) bool {
	if len(p.segments) > len(other.segments) {
		return false
	}
	//
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	// Looks good
	return true
}

// Extend returns this path extended with a new innermost segment.
func (p Path) Extend(tail string) Path {
	segments := make([]string, len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)
	//
	return Path{append(segments, tail)}
}

// Return a string representation of this path, with segments joined by
// slashes.  This string is what named symbolic values are keyed by in the
// underlying solver context.
func (p Path) String() string {
	return strings.Join(p.segments, "/")
}
