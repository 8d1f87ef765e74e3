// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"path/filepath"
	"testing"

	"github.com/starlinghq/starling/asset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

func TestValueAccessors(t *testing.T) {
	f := FloatValue(3.5)
	assert.Equal(t, Float, f.Kind())
	fv, ok := f.AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 3.5, fv)
	_, ok = f.AsInt()
	assert.False(t, ok)

	i := IntValue(-7)
	iv, ok := i.AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(-7), iv)
	_, ok = i.AsString()
	assert.False(t, ok)

	s := StringValue("nest")
	sv, ok := s.AsString()
	assert.True(t, ok)
	assert.Equal(t, "nest", sv)
	_, ok = s.AsFloat()
	assert.False(t, ok)
}

func testState() State {
	return State{
		"pi":    FloatValue(3.25),
		"score": IntValue(42),
		"name":  StringValue("starling"),
	}
}

func TestValueYAMLRoundTrip(t *testing.T) {
	in := testState()
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Int: 42")
	assert.Contains(t, string(data), "Float: 3.25")
	assert.Contains(t, string(data), "String: starling")

	out := State{}
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestValueYAMLUnknownTag(t *testing.T) {
	err := yaml.Unmarshal([]byte("x:\n    Bogus: 1\n"), &State{})
	assert.Error(t, err)
}

func TestValueMsgpackRoundTrip(t *testing.T) {
	in := testState()
	data, err := msgpack.Marshal(in)
	require.NoError(t, err)

	out := State{}
	require.NoError(t, msgpack.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestStateSaveLoad(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "save.state")
	in := testState()
	require.NoError(t, asset.Save(fname, in))

	out := State{}
	require.NoError(t, asset.Load(fname, &out))
	assert.Equal(t, in, out)
}
