package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/webgl-scenes/pkg/math"
)

// OBJ format errors.
var (
	ErrOBJSyntax          = errors.New("malformed OBJ statement")
	ErrOBJIndexOutOfRange = errors.New("OBJ face index out of range")
	ErrOBJFaceArity       = errors.New("OBJ face needs at least 3 vertices")
	ErrOBJDegenerateUV    = errors.New("OBJ face has degenerate UV mapping")
)

// VertexLayout describes which attributes are interleaved per vertex.
type VertexLayout int

// Vertex layouts.
const (
	// LayoutBasic is position(3) uv(2) normal(3).
	LayoutBasic VertexLayout = iota
	// LayoutTangent appends tangent(3) bitangent(3) for normal mapping.
	LayoutTangent
)

// Strides in floats per vertex.
const (
	StrideBasic   = 8
	StrideTangent = 14
)

// Stride returns the number of floats per vertex.
func (l VertexLayout) Stride() int {
	if l == LayoutTangent {
		return StrideTangent
	}
	return StrideBasic
}

// String returns the layout name.
func (l VertexLayout) String() string {
	switch l {
	case LayoutBasic:
		return "basic"
	case LayoutTangent:
		return "tangent"
	default:
		return fmt.Sprintf("Unknown(%d)", int(l))
	}
}

// OBJOptions controls parsing.
type OBJOptions struct {
	Layout VertexLayout

	// Strict rejects faces whose UV triangle has zero area instead of
	// substituting a basis built from the face normal.
	Strict bool
}

// OBJMesh is a parsed Wavefront OBJ file expanded into a flat, non-indexed
// vertex buffer ready for upload.
type OBJMesh struct {
	Layout VertexLayout

	// Vertices holds Triangles*3 vertices of Layout.Stride() floats each.
	Vertices []float32

	// Source attributes as declared in the file.
	Positions []math.Vec3
	UVs       []math.Vec2
	Normals   []math.Vec3

	Triangles int
	Warnings  []string
}

// Stride returns the number of floats per vertex.
func (m *OBJMesh) Stride() int {
	return m.Layout.Stride()
}

// VertexCount returns the number of emitted vertices.
func (m *OBJMesh) VertexCount() int {
	return len(m.Vertices) / m.Stride()
}

// Vertex returns the attributes of the i-th emitted vertex.
// Returns nil if i is out of range.
func (m *OBJMesh) Vertex(i int) []float32 {
	stride := m.Stride()
	if i < 0 || (i+1)*stride > len(m.Vertices) {
		return nil
	}
	return m.Vertices[i*stride : (i+1)*stride]
}

// Bounds returns the axis-aligned bounds of the emitted vertex positions.
func (m *OBJMesh) Bounds() (min, max math.Vec3) {
	n := m.VertexCount()
	if n == 0 {
		return math.Vec3{}, math.Vec3{}
	}

	first := m.Vertex(0)
	min = math.Vec3{X: first[0], Y: first[1], Z: first[2]}
	max = min
	for i := 1; i < n; i++ {
		v := m.Vertex(i)
		p := math.Vec3{X: v[0], Y: v[1], Z: v[2]}
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max
}

// objCorner is one resolved face corner.
type objCorner struct {
	pos    math.Vec3
	uv     math.Vec2
	normal math.Vec3
	hasN   bool
}

// objParser holds the accumulated state while scanning.
type objParser struct {
	opts OBJOptions
	mesh *OBJMesh
	line int
}

// ParseOBJ parses OBJ text into a flat vertex buffer.
//
// Faces with more than three corners are split into a triangle fan. Missing
// texture coordinates are emitted as (0, 0) and missing normals are replaced
// by the flat face normal.
func ParseOBJ(data []byte, opts OBJOptions) (*OBJMesh, error) {
	p := &objParser{
		opts: opts,
		mesh: &OBJMesh{Layout: opts.Layout},
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(sc.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", p.line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ data: %w", err)
	}

	return p.mesh, nil
}

// ParseOBJString parses OBJ text held in a string.
func ParseOBJString(s string, opts OBJOptions) (*OBJMesh, error) {
	return ParseOBJ([]byte(s), opts)
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string, opts OBJOptions) (*OBJMesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data, opts)
}

func (p *objParser) parseLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	tag, args := fields[0], fields[1:]
	switch tag {
	case "v":
		v, err := parseFloats(args, 3, 4)
		if err != nil {
			return err
		}
		p.mesh.Positions = append(p.mesh.Positions, math.Vec3{X: v[0], Y: v[1], Z: v[2]})
	case "vt":
		// v defaults to 0 for 1D texture coordinates
		v, err := parseFloats(args, 1, 3)
		if err != nil {
			return err
		}
		p.mesh.UVs = append(p.mesh.UVs, math.Vec2{X: v[0], Y: v[1]})
	case "vn":
		v, err := parseFloats(args, 3, 3)
		if err != nil {
			return err
		}
		p.mesh.Normals = append(p.mesh.Normals, math.Vec3{X: v[0], Y: v[1], Z: v[2]})
	case "f":
		return p.parseFace(args)
	case "o", "g", "s", "usemtl", "mtllib":
		// Grouping and materials do not affect the vertex buffer
	default:
		p.mesh.Warnings = append(p.mesh.Warnings,
			fmt.Sprintf("line %d: unsupported statement %q", p.line, tag))
	}
	return nil
}

func (p *objParser) parseFace(refs []string) error {
	if len(refs) < 3 {
		return fmt.Errorf("%w: got %d", ErrOBJFaceArity, len(refs))
	}

	corners := make([]objCorner, len(refs))
	for i, ref := range refs {
		c, err := p.resolveCorner(ref)
		if err != nil {
			return err
		}
		corners[i] = c
	}

	if len(corners) > 3 {
		p.mesh.Warnings = append(p.mesh.Warnings,
			fmt.Sprintf("line %d: %d-sided face triangulated as fan", p.line, len(corners)))
	}

	// Fan: (0, i-1, i)
	for i := 2; i < len(corners); i++ {
		if err := p.emitTriangle(corners[0], corners[i-1], corners[i]); err != nil {
			return err
		}
	}
	return nil
}

// resolveCorner parses one of p, p/t, p//n or p/t/n.
func (p *objParser) resolveCorner(ref string) (objCorner, error) {
	parts := strings.Split(ref, "/")
	if len(parts) > 3 || parts[0] == "" {
		return objCorner{}, fmt.Errorf("%w: face reference %q", ErrOBJSyntax, ref)
	}

	var c objCorner

	pi, err := resolveIndex(parts[0], len(p.mesh.Positions))
	if err != nil {
		return objCorner{}, fmt.Errorf("position %q: %w", parts[0], err)
	}
	c.pos = p.mesh.Positions[pi]

	if len(parts) > 1 && parts[1] != "" {
		ti, err := resolveIndex(parts[1], len(p.mesh.UVs))
		if err != nil {
			return objCorner{}, fmt.Errorf("uv %q: %w", parts[1], err)
		}
		c.uv = p.mesh.UVs[ti]
	}

	if len(parts) > 2 && parts[2] != "" {
		ni, err := resolveIndex(parts[2], len(p.mesh.Normals))
		if err != nil {
			return objCorner{}, fmt.Errorf("normal %q: %w", parts[2], err)
		}
		c.normal = p.mesh.Normals[ni]
		c.hasN = true
	}

	return c, nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index into a
// 0-based index into a list of length n.
func resolveIndex(s string, n int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", ErrOBJSyntax, s)
	}

	switch {
	case idx > 0 && idx <= n:
		return idx - 1, nil
	case idx < 0 && -idx <= n:
		return n + idx, nil
	default:
		return 0, fmt.Errorf("%w: %d of %d", ErrOBJIndexOutOfRange, idx, n)
	}
}

func (p *objParser) emitTriangle(a, b, c objCorner) error {
	tri := [3]objCorner{a, b, c}

	faceNormal := b.pos.Sub(a.pos).Cross(c.pos.Sub(a.pos)).Normalize()
	for i := range tri {
		if !tri[i].hasN {
			tri[i].normal = faceNormal
		}
	}

	var tangent, bitangent math.Vec3
	if p.opts.Layout == LayoutTangent {
		var ok bool
		tangent, bitangent, ok = TangentSpace(a.pos, b.pos, c.pos, a.uv, b.uv, c.uv)
		if !ok {
			if p.opts.Strict {
				return ErrOBJDegenerateUV
			}
			n := faceNormal
			if n.IsZero() {
				n = tri[0].normal
			}
			tangent, bitangent = orthonormalBasis(n)
			p.mesh.Warnings = append(p.mesh.Warnings,
				fmt.Sprintf("line %d: degenerate UVs, using fallback tangent basis", p.line))
		}
	}

	for _, v := range tri {
		p.mesh.Vertices = append(p.mesh.Vertices,
			v.pos.X, v.pos.Y, v.pos.Z,
			v.uv.X, v.uv.Y,
			v.normal.X, v.normal.Y, v.normal.Z,
		)
		if p.opts.Layout == LayoutTangent {
			p.mesh.Vertices = append(p.mesh.Vertices,
				tangent.X, tangent.Y, tangent.Z,
				bitangent.X, bitangent.Y, bitangent.Z,
			)
		}
	}
	p.mesh.Triangles++
	return nil
}

// parseFloats parses between min and max finite float fields. The result
// always has max entries; missing trailing values are zero.
func parseFloats(args []string, min, max int) ([]float32, error) {
	if len(args) < min || len(args) > max {
		return nil, fmt.Errorf("%w: expected %d to %d values, got %d", ErrOBJSyntax, min, max, len(args))
	}

	out := make([]float32, max)
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil || !math.IsFinite(float32(f)) {
			return nil, fmt.Errorf("%w: number %q", ErrOBJSyntax, arg)
		}
		out[i] = float32(f)
	}
	return out, nil
}
