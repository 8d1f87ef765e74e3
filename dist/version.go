// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"os"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// versionExp matches the Version constant line in a version file.
var versionExp = regexp.MustCompile(`Version = "[^"]*"`)

// SetVersion rewrites the Version constant in the Go source file at
// the given path, which is how the version the binary reports is kept
// in sync with release tags.
func SetVersion(path string, version *semver.Version) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading version file: %w", err)
	}
	if !versionExp.Match(b) {
		return fmt.Errorf("no Version constant found in %s", path)
	}
	b = versionExp.ReplaceAll(b, []byte(`Version = "`+version.String()+`"`))
	err = os.WriteFile(path, b, 0666)
	if err != nil {
		return fmt.Errorf("error writing version file: %w", err)
	}
	return nil
}
