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

// WriteOBJ writes the mesh in Wavefront OBJ format. Vertices are written
// in mesh order, followed by one texture coordinate per vertex if the mesh
// has them, and faces refer to both by the same 1-based vertex number.
func WriteOBJ(w io.Writer, ms *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d faces\n", ms.NumVertices(), ms.NumFaces())
	for vh := range ms.Vertices() {
		p := ms.Point(vh)
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}
	hasTex := ms.HasTexCoords()
	if hasTex {
		for vh := range ms.Vertices() {
			uv := ms.TexCoord(vh)
			fmt.Fprintf(bw, "vt %s %s\n", formatFloat(uv.X), formatFloat(uv.Y))
		}
	}
	for fh := range ms.Faces() {
		f := ms.FaceVertices(fh)
		a, b, c := f[0].Idx()+1, f[1].Idx()+1, f[2].Idx()+1
		if hasTex {
			fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
		} else {
			fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
		}
	}
	return bw.Flush()
}

// ReadOBJ reads a triangle mesh in Wavefront OBJ format. Only v, vt and f
// lines are used; other statements are skipped and listed in the
// warnings of an [OBJDecoder]. A texture coordinate referenced by a face
// corner is assigned to that corner's vertex.
func ReadOBJ(r io.Reader) (*mesh.Mesh, error) {
	dec := NewOBJDecoder()
	if err := dec.Decode(r); err != nil {
		return nil, err
	}
	return dec.Mesh, nil
}

// OBJDecoder decodes Wavefront OBJ data into a [mesh.Mesh].
type OBJDecoder struct {

	// Mesh is the decoded mesh.
	Mesh *mesh.Mesh

	// Warnings has a message for each statement that was skipped.
	Warnings []string

	uvs  []math32.Vector2
	line int
}

// NewOBJDecoder returns a new decoder with an empty mesh.
func NewOBJDecoder() *OBJDecoder {
	return &OBJDecoder{Mesh: &mesh.Mesh{}}
}

// Decode reads all of the given OBJ data into the decoder mesh.
func (dec *OBJDecoder) Decode(r io.Reader) error {
	bufin := bufio.NewReader(r)
	dec.line = 1
	for {
		// Reads next line and abort on errors (not EOF)
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if perr := dec.parseLine(strings.TrimSpace(line)); perr != nil {
			return &lineError{format: OBJ, line: dec.line, err: perr}
		}
		if err == io.EOF {
			break
		}
		dec.line++
	}
	return nil
}

func (dec *OBJDecoder) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	switch fields[0] {
	case "v":
		return dec.parseVertex(fields[1:])
	case "vt":
		return dec.parseTex(fields[1:])
	case "f":
		return dec.parseFace(fields[1:])
	default:
		dec.Warnings = append(dec.Warnings, fmt.Sprintf("line %d: statement not supported: %s", dec.line, fields[0]))
	}
	return nil
}

func (dec *OBJDecoder) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return errors.New("less than 3 coordinates in 'v' line")
	}
	var p [3]float32
	for i, f := range fields[:3] {
		v, err := parseFloat(f)
		if err != nil {
			return err
		}
		p[i] = v
	}
	dec.Mesh.AddVertex(math32.Vec3(p[0], p[1], p[2]))
	return nil
}

func (dec *OBJDecoder) parseTex(fields []string) error {
	if len(fields) < 2 {
		return errors.New("less than 2 coordinates in 'vt' line")
	}
	u, err := parseFloat(fields[0])
	if err != nil {
		return err
	}
	v, err := parseFloat(fields[1])
	if err != nil {
		return err
	}
	dec.uvs = append(dec.uvs, math32.Vec2(u, v))
	return nil
}

// objIndex resolves a 1-based or negative relative OBJ index
// into a 0-based index into a list of n elements.
func objIndex(s string, n int) (int, error) {
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	var idx int
	switch {
	case val > 0:
		idx = val - 1
	case val < 0:
		idx = n + val
	default:
		return 0, errors.New("index value equal to 0")
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("index %d out of range", val)
	}
	return idx, nil
}

func (dec *OBJDecoder) parseFace(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("face with %d corners, only triangles are supported", len(fields))
	}
	var vhs [3]mesh.VertexHandle
	for pos, f := range fields {
		// v, v/vt, v//vn or v/vt/vn
		vfields := strings.Split(f, "/")
		vi, err := objIndex(vfields[0], dec.Mesh.NumVertices())
		if err != nil {
			return fmt.Errorf("face vertex: %w", err)
		}
		vhs[pos] = mesh.VertexHandle(vi)
		if len(vfields) > 1 && vfields[1] != "" {
			ti, err := objIndex(vfields[1], len(dec.uvs))
			if err != nil {
				return fmt.Errorf("face uv: %w", err)
			}
			dec.Mesh.SetTexCoord(vhs[pos], dec.uvs[ti])
		}
	}
	_, err := dec.Mesh.AddFace(vhs[0], vhs[1], vhs[2])
	return err
}
