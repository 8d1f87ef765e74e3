// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides image loading, saving, and image-based
// test assertion helpers.
package imagex

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// Open opens the given image file, returning the image and its format.
func Open(filename string) (image.Image, string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return image.Decode(f)
}

// Save saves the given image to the given file, with the encoding
// determined by the file extension. Only png is currently supported.
func Save(img image.Image, filename string) error {
	ext := filepath.Ext(filename)
	if ext != ".png" {
		return fmt.Errorf("imagex.Save: extension %q not supported", ext)
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// ToRGBA returns the given image as an [image.RGBA],
// converting only if it is not one already.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
