// Package geom turns parsed OBJ data into vectors and 0-based triangle
// indices ready for drawing.
package geom

import (
	"errors"
	"fmt"
	"math"

	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/thedaneeffect/objloader/obj"
)

type (
	vec2 = mgl.Vec2
	vec3 = mgl.Vec3
	vec4 = mgl.Vec4
)

// ErrIndexRange reports a face reference past the end of its list.
var ErrIndexRange = errors.New("index out of range")

// Triangle holds 0-based indices into Mesh.Points, Mesh.UVs and
// Mesh.Normals. UV and normal indices are -1 when absent.
type Triangle struct {
	V [3]int
	T [3]int
	N [3]int
}

// Mesh is the vector form of a parsed model.
type Mesh struct {
	Points    []vec3
	Normals   []vec3
	UVs       []vec2
	Triangles []Triangle
}

// Source is what FromLoader reads; *obj.Loader satisfies it.
type Source interface {
	Positions() []float32
	Normals() []float32
	TexCoords() []float32
	Faces() []obj.Face
}

// FromLoader builds a Mesh and checks every face reference against the
// lists it points into.
func FromLoader(src Source) (*Mesh, error) {
	m := &Mesh{
		Points:  toVec3(src.Positions()),
		Normals: toVec3(src.Normals()),
	}
	tc := src.TexCoords()
	m.UVs = make([]vec2, 0, len(tc)/3)
	for i := 0; i+2 < len(tc); i += 3 {
		m.UVs = append(m.UVs, vec2{tc[i], tc[i+1]})
	}

	faces := src.Faces()
	m.Triangles = make([]Triangle, 0, len(faces))
	for fi, f := range faces {
		var t Triangle
		for i, v := range f {
			var err error
			if t.V[i], err = resolve(obj.Some(v.Position), len(m.Points)); err != nil {
				return nil, fmt.Errorf("face %d vertex %d position: %w", fi+1, i+1, err)
			}
			if t.T[i], err = resolve(v.Texture, len(m.UVs)); err != nil {
				return nil, fmt.Errorf("face %d vertex %d texture: %w", fi+1, i+1, err)
			}
			if t.N[i], err = resolve(v.Normal, len(m.Normals)); err != nil {
				return nil, fmt.Errorf("face %d vertex %d normal: %w", fi+1, i+1, err)
			}
		}
		m.Triangles = append(m.Triangles, t)
	}
	return m, nil
}

func resolve(idx obj.Index, n int) (int, error) {
	i, ok := idx.Get()
	if !ok {
		return -1, nil
	}
	if i < 1 || i > n {
		return -1, fmt.Errorf("%w: %d of %d", ErrIndexRange, i, n)
	}
	return i - 1, nil
}

func toVec3(flat []float32) []vec3 {
	out := make([]vec3, 0, len(flat)/3)
	for i := 0; i+2 < len(flat); i += 3 {
		out = append(out, vec3{flat[i], flat[i+1], flat[i+2]})
	}
	return out
}

// Bounds returns the corners of the axis-aligned box around all points.
// Both are zero for an empty mesh.
func (m *Mesh) Bounds() (lo, hi vec3) {
	if len(m.Points) == 0 {
		return
	}
	lo = vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	hi = lo.Mul(-1)
	for _, p := range m.Points {
		for axis := range p {
			lo[axis] = min(lo[axis], p[axis])
			hi[axis] = max(hi[axis], p[axis])
		}
	}
	return
}

// FaceNormal returns the unit normal of triangle i from its winding.
// Degenerate triangles yield the zero vector.
func (m *Mesh) FaceNormal(i int) vec3 {
	t := m.Triangles[i]
	a := m.Points[t.V[0]]
	b := m.Points[t.V[1]]
	c := m.Points[t.V[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 0 {
		return n.Mul(1 / l)
	}
	return vec3{}
}

// Normalize recenters the points around the origin and scales them so
// that the longest side of the bounding box has length 2.
func (m *Mesh) Normalize() {
	lo, hi := m.Bounds()
	size := hi.Sub(lo)
	longest := max(size.X(), size.Y(), size.Z())
	if longest == 0 {
		return
	}
	center := lo.Add(hi).Mul(0.5)
	scale := 2 / longest
	for i, p := range m.Points {
		m.Points[i] = p.Sub(center).Mul(scale)
	}
}
