// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio reads and writes [mesh.Mesh] triangle meshes in the
// Wavefront OBJ (*.obj) and Object File Format (*.off) formats.
// Only vertex positions, per-vertex texture coordinates and triangle
// faces are supported; materials, normals and groups are ignored.
package meshio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/uvsphere/base/errors"
	"cogentcore.org/uvsphere/mesh"
)

// ErrUnsupportedFormat is returned for a file extension or format name
// that has no encoder.
var ErrUnsupportedFormat = errors.New("meshio: unsupported format")

// Format is a mesh file format.
type Format string

const (
	// OBJ is the Wavefront OBJ format.
	OBJ Format = "obj"

	// OFF is the Object File Format.
	OFF Format = "off"
)

// FormatFromFilename returns the format for the extension of the
// given file name.
func FormatFromFilename(filename string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// ParseFormat returns the format with the given name, ignoring case.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case OBJ, OFF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Write writes the mesh to the writer in the given format.
func Write(w io.Writer, ms *mesh.Mesh, format Format) error {
	switch format {
	case OBJ:
		return WriteOBJ(w, ms)
	case OFF:
		return WriteOFF(w, ms)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Read reads a mesh in the given format from the reader.
func Read(r io.Reader, format Format) (*mesh.Mesh, error) {
	switch format {
	case OBJ:
		return ReadOBJ(r)
	case OFF:
		return ReadOFF(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Save writes the mesh to the given file, in the format given by
// the file extension.
func Save(filename string, ms *mesh.Mesh) error {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = Write(f, ms, format)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Open reads a mesh from the given file, in the format given by
// the file extension.
func Open(filename string) (*mesh.Mesh, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, format)
}

// formatFloat returns the shortest text that parses back to
// exactly the same float32.
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

// lineError is a decoding error at a given line of the input.
type lineError struct {
	format Format
	line   int
	err    error
}

func (e *lineError) Error() string {
	return fmt.Sprintf("meshio: %s line %d: %v", e.format, e.line, e.err)
}

func (e *lineError) Unwrap() error { return e.err }
