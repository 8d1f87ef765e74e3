// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !update

package imagex

import "os"

var updateTestImages = os.Getenv("STARLING_UPDATE_TESTDATA") == "true"
