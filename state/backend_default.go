// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug

package state

import "github.com/starlinghq/starling/asset"

const stateBackend = asset.MessagePack
