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

package typeid

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"

	"gopkg.in/yaml.v3"

	"dirpx.dev/typeid/reason"
)

var (
	_ encoding.TextMarshaler   = Prefix{}
	_ encoding.TextUnmarshaler = (*Prefix)(nil)
	_ yaml.Marshaler           = Prefix{}
	_ yaml.Unmarshaler         = (*Prefix)(nil)
	_ driver.Valuer            = Prefix{}
	_ sql.Scanner              = (*Prefix)(nil)
)

// MarshalText implements encoding.TextMarshaler. The output is the prefix
// verbatim; JSON encodes it as a plain string.
func (p Prefix) MarshalText() ([]byte, error) {
	if err := p.verify(); err != nil {
		return nil, err
	}
	return []byte(p.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is parsed
// strictly: no trimming, no lowercasing. On error p is left unchanged.
func (p *Prefix) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return asValidationError(err, reason.UnmarshalText)
	}
	*p = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Prefix) MarshalYAML() (any, error) {
	if err := p.verify(); err != nil {
		return nil, err
	}
	return p.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The node must be a scalar;
// errors carry the node's line number.
func (p *Prefix) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("typeid: line %d: prefix must be a scalar", node.Line)
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("typeid: line %d: %w", node.Line, err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return fmt.Errorf("typeid: line %d: %w", node.Line, asValidationError(err, reason.UnmarshalYAML))
	}
	*p = parsed
	return nil
}

// Value implements driver.Valuer. The empty prefix is stored as "".
func (p Prefix) Value() (driver.Value, error) {
	if err := p.verify(); err != nil {
		return nil, err
	}
	return p.value, nil
}

// Scan implements sql.Scanner. NULL scans into the empty prefix.
func (p *Prefix) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*p = Prefix{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("typeid: cannot scan %T into Prefix", src)
	}
	parsed, err := Parse(s)
	if err != nil {
		return asValidationError(err, reason.Scan)
	}
	*p = parsed
	return nil
}

// verify re-checks the invariant before a value leaves the process. Only a
// Prefix built without Parse, such as a composite literal inside this
// package, can fail it.
func (p Prefix) verify() error {
	if k, off := check(p.value); k != "" {
		return newValidationError(k, p.value, off)
	}
	return nil
}
