// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state provides the persistent game state: a set of named,
// dynamically typed values saved and loaded as an asset file. In debug
// builds the file is YAML for easy editing; in other builds it is
// MessagePack.
package state

import (
	"fmt"

	"github.com/starlinghq/starling/asset"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Kind is the type tag of a Value.
type Kind int32

const (
	// Float is a 64-bit floating point value.
	Float Kind = iota

	// Int is a 64-bit signed integer value.
	Int

	// String is a string value.
	String
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "Float"
	case Int:
		return "Int"
	case String:
		return "String"
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// Value is one state entry: a float, an int, or a string. Values are
// serialized with their type tag so state files round-trip exactly.
type Value struct {
	kind Kind
	f    float64
	i    int64
	s    string
}

// FloatValue returns a Value holding the given float.
func FloatValue(v float64) Value { return Value{kind: Float, f: v} }

// IntValue returns a Value holding the given int.
func IntValue(v int64) Value { return Value{kind: Int, i: v} }

// StringValue returns a Value holding the given string.
func StringValue(v string) Value { return Value{kind: String, s: v} }

// Kind returns the type tag of the value.
func (v Value) Kind() Kind { return v.kind }

// AsFloat returns the float payload, or false if the value is not a Float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == Float }

// AsInt returns the int payload, or false if the value is not an Int.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == Int }

// AsString returns the string payload, or false if the value is not a String.
func (v Value) AsString() (string, bool) { return v.s, v.kind == String }

func (v Value) String() string {
	switch v.kind {
	case Float:
		return fmt.Sprintf("Float(%g)", v.f)
	case Int:
		return fmt.Sprintf("Int(%d)", v.i)
	case String:
		return fmt.Sprintf("String(%q)", v.s)
	}
	return v.kind.String()
}

// MarshalYAML encodes the value as a single-entry map keyed by its
// type tag.
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case Float:
		return map[string]float64{"Float": v.f}, nil
	case Int:
		return map[string]int64{"Int": v.i}, nil
	case String:
		return map[string]string{"String": v.s}, nil
	}
	return nil, fmt.Errorf("state: cannot marshal value of kind %v", v.kind)
}

// UnmarshalYAML decodes the single-entry tagged map form produced by
// MarshalYAML.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("state: value must be a single-entry tagged map, line %d", node.Line)
	}
	tag, payload := node.Content[0].Value, node.Content[1]
	switch tag {
	case "Float":
		v.kind = Float
		return payload.Decode(&v.f)
	case "Int":
		v.kind = Int
		return payload.Decode(&v.i)
	case "String":
		v.kind = String
		return payload.Decode(&v.s)
	}
	return fmt.Errorf("state: unknown value tag %q, line %d", tag, node.Line)
}

// EncodeMsgpack encodes the value as a single-entry map keyed by its
// type tag.
func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(1); err != nil {
		return err
	}
	if err := enc.EncodeString(v.kind.String()); err != nil {
		return err
	}
	switch v.kind {
	case Float:
		return enc.EncodeFloat64(v.f)
	case Int:
		return enc.EncodeInt(v.i)
	case String:
		return enc.EncodeString(v.s)
	}
	return fmt.Errorf("state: cannot marshal value of kind %v", v.kind)
}

// DecodeMsgpack decodes the single-entry tagged map form produced by
// EncodeMsgpack.
func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("state: value must be a single-entry tagged map, got %d entries", n)
	}
	tag, err := dec.DecodeString()
	if err != nil {
		return err
	}
	switch tag {
	case "Float":
		v.kind = Float
		v.f, err = dec.DecodeFloat64()
	case "Int":
		v.kind = Int
		v.i, err = dec.DecodeInt64()
	case "String":
		v.kind = String
		v.s, err = dec.DecodeString()
	default:
		return fmt.Errorf("state: unknown value tag %q", tag)
	}
	return err
}

// State is the persistent game state, keyed by name.
type State map[string]Value

// Backend returns the asset backend state files are stored in for this
// build.
func (State) Backend() asset.Backend { return stateBackend }
