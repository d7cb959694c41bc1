// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/uvsphere/base/errors"
	"cogentcore.org/uvsphere/math32"
	"cogentcore.org/uvsphere/mesh"
)

// WriteOFF writes the mesh in Object File Format: an OFF header line,
// the vertex, face and edge counts, the vertex positions and then each
// face as its corner count followed by 0-based vertex numbers.
// Texture coordinates are not written.
func WriteOFF(w io.Writer, ms *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "OFF\n%d %d %d\n", ms.NumVertices(), ms.NumFaces(), ms.NumEdges())
	for vh := range ms.Vertices() {
		p := ms.Point(vh)
		fmt.Fprintf(bw, "%s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}
	for fh := range ms.Faces() {
		f := ms.FaceVertices(fh)
		fmt.Fprintf(bw, "3 %d %d %d\n", f[0], f[1], f[2])
	}
	return bw.Flush()
}

// ReadOFF reads a triangle mesh in Object File Format.
// Blank lines and # comments are skipped.
func ReadOFF(r io.Reader) (*mesh.Mesh, error) {
	rd := offReader{sc: bufio.NewScanner(r)}
	ms, err := rd.read()
	if err != nil {
		return nil, &lineError{format: OFF, line: rd.line, err: err}
	}
	return ms, nil
}

// maxReserve bounds the storage reserved from the header counts,
// which come from the file and are not trusted.
const maxReserve = 1 << 16

type offReader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the fields of the next line with content.
func (rd *offReader) next() ([]string, error) {
	for rd.sc.Scan() {
		rd.line++
		line, _, _ := strings.Cut(rd.sc.Text(), "#")
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := rd.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}

// ints parses the fields as integers in the int32 range of
// vertex handles.
func (rd *offReader) ints(fields []string) ([]int, error) {
	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, err
		}
		vals[i] = int(v)
	}
	return vals, nil
}

func (rd *offReader) read() (*mesh.Mesh, error) {
	fields, err := rd.next()
	if err != nil {
		return nil, err
	}
	if fields[0] != "OFF" {
		return nil, errors.New("missing OFF header")
	}
	// counts may follow the header on the same line
	if len(fields) == 1 {
		if fields, err = rd.next(); err != nil {
			return nil, err
		}
	} else {
		fields = fields[1:]
	}
	if len(fields) < 2 {
		return nil, errors.New("missing vertex and face counts")
	}
	counts, err := rd.ints(fields[:2])
	if err != nil {
		return nil, err
	}
	nv, nf := counts[0], counts[1]
	if nv < 0 || nf < 0 {
		return nil, errors.New("negative vertex or face count")
	}
	ms := mesh.New(min(nv, maxReserve), min(nf, maxReserve))
	for range nv {
		if fields, err = rd.next(); err != nil {
			return nil, err
		}
		if len(fields) < 3 {
			return nil, errors.New("less than 3 coordinates in vertex line")
		}
		var p [3]float32
		for i, f := range fields[:3] {
			if p[i], err = parseFloat(f); err != nil {
				return nil, err
			}
		}
		ms.AddVertex(math32.Vec3(p[0], p[1], p[2]))
	}
	for range nf {
		if fields, err = rd.next(); err != nil {
			return nil, err
		}
		vals, err := rd.ints(fields)
		if err != nil {
			return nil, err
		}
		if vals[0] != 3 || len(vals) < 4 {
			return nil, fmt.Errorf("face with %d corners, only triangles are supported", vals[0])
		}
		if _, err := ms.AddFace(mesh.VertexHandle(vals[1]), mesh.VertexHandle(vals[2]), mesh.VertexHandle(vals[3])); err != nil {
			return nil, err
		}
	}
	return ms, nil
}
