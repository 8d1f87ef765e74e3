// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asset provides typed loading and saving of game data files,
// with a serialization backend chosen per asset type, and file change
// watching for hot reload during development.
package asset

import (
	"bufio"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Backend is a serialization format for asset files.
type Backend int32

const (
	// MessagePack is the compact binary backend used for shipped assets.
	MessagePack Backend = iota

	// YAML is the human-editable text backend used during development.
	YAML
)

// Asset is implemented by types that can be loaded from and saved to
// asset files. Backend selects the serialization format for the type,
// which typically differs between debug and release builds.
type Asset interface {
	Backend() Backend
}

// Load reads the asset file at the given path into a, which must be a
// pointer, using a's backend.
func Load(fname string, a Asset) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	switch a.Backend() {
	case YAML:
		err = yaml.NewDecoder(r).Decode(a)
	default:
		err = msgpack.NewDecoder(r).Decode(a)
	}
	if err != nil {
		return fmt.Errorf("asset: decoding %q: %w", fname, err)
	}
	return nil
}

// Save writes a to the asset file at the given path, using a's backend.
func Save(fname string, a Asset) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	switch a.Backend() {
	case YAML:
		enc := yaml.NewEncoder(w)
		err = enc.Encode(a)
		if err == nil {
			err = enc.Close()
		}
	default:
		err = msgpack.NewEncoder(w).Encode(a)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("asset: encoding %q: %w", fname, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
