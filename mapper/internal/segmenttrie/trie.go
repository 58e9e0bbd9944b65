/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package segmenttrie indexes dot-separated reason patterns for
// longest-prefix lookup.
package segmenttrie

import (
	"errors"
	"strings"
)

// MaxDepth is the maximum number of segments in a pattern. It matches the
// segment limit of reason.Reason.
const MaxDepth = 4

// Wildcard matches exactly one segment.
const Wildcard = "*"

// ErrInvalidPattern is returned when inserting a pattern that is empty, has
// an empty or malformed segment, is deeper than MaxDepth, or consists only
// of wildcards.
var ErrInvalidPattern = errors.New("segmenttrie: invalid pattern")

// Trie maps reason patterns such as "typeid.prefix" or "billing.*.create"
// to values. One node per segment; a value stored at a node applies to every
// reason that starts with the node's path.
//
// A Trie is built once and then only read, so concurrent Match calls are
// safe after the last Insert.
type Trie[T any] struct {
	children map[string]*Trie[T]

	hasVal bool
	val    T
	// pattern is the inserted text, kept for Explain.
	pattern string
}

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert stores val under pattern, replacing any previous value.
//
//	"typeid.prefix"        every entry point of the typeid module
//	"typeid.prefix.scan"   database reads only
//	"billing.*.create"     any billing service's create call
func (t *Trie[T]) Insert(pattern string, val T) error {
	if t == nil {
		return ErrInvalidPattern
	}
	segs, ok := split(pattern)
	if !ok {
		return ErrInvalidPattern
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = pattern
	return nil
}

// Match returns the value of the deepest pattern that is a segment-wise
// prefix of reason, together with that pattern. At equal depth an exact
// segment beats a wildcard. An empty or malformed reason never matches.
//
// Segments are sliced out of reason in place, never copied.
func (t *Trie[T]) Match(reason string) (val T, pattern string, ok bool) {
	if t == nil || !validReason(reason) {
		return val, "", false
	}

	best := -1
	var walk func(n *Trie[T], off, depth int)
	walk = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > best {
			best, val, pattern = depth, n.val, n.pattern
		}
		if off >= len(reason) {
			return
		}
		end, _ := scanSegment(reason, off)
		seg := reason[off:end]
		next := end
		if next < len(reason) {
			next++ // skip '.'
		}
		if child, ok := n.children[seg]; ok {
			walk(child, next, depth+1)
		}
		if child, ok := n.children[Wildcard]; ok {
			walk(child, next, depth+1)
		}
	}
	walk(t, 0, 0)

	return val, pattern, best > 0
}

// scanSegment returns the end offset of the segment starting at off, and
// whether it is well formed ([a-z][a-z0-9_]*, followed by '.' or the end).
func scanSegment(s string, off int) (int, bool) {
	if s[off] < 'a' || s[off] > 'z' {
		return off, false
	}
	i := off + 1
	for ; i < len(s) && s[i] != '.'; i++ {
		if !segmentByte(s[i]) {
			return i, false
		}
	}
	if i < len(s) && i == len(s)-1 {
		return i, false // trailing '.'
	}
	return i, true
}

func validReason(s string) bool {
	if s == "" {
		return false
	}
	for off := 0; off < len(s); {
		end, ok := scanSegment(s, off)
		if !ok {
			return false
		}
		off = end + 1
	}
	return true
}

// split validates pattern and returns its segments.
func split(pattern string) ([]string, bool) {
	if pattern == "" {
		return nil, false
	}
	segs := strings.Split(pattern, ".")
	if len(segs) > MaxDepth {
		return nil, false
	}
	literal := false
	for _, s := range segs {
		if s == Wildcard {
			continue
		}
		if !validSegment(s) {
			return nil, false
		}
		literal = true
	}
	return segs, literal
}

func validSegment(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !segmentByte(s[i]) {
			return false
		}
	}
	return true
}

func segmentByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
