package geom

// The clip volume is -w <= x, y, z <= w. Each boundary is described by
// the signed distance of a clip-space point from it; a point is inside
// when every distance is non-negative.
var boundaries = [...]func(v vec4) float32{
	func(v vec4) float32 { return v[3] - v[0] }, // right
	func(v vec4) float32 { return v[3] + v[0] }, // left
	func(v vec4) float32 { return v[3] - v[1] }, // top
	func(v vec4) float32 { return v[3] + v[1] }, // bottom
	func(v vec4) float32 { return v[3] - v[2] }, // far
	func(v vec4) float32 { return v[3] + v[2] }, // near
}

// InsideClipVolume reports whether the clip-space point v needs no
// clipping.
func InsideClipVolume(v vec4) bool {
	for _, dist := range boundaries {
		if dist(v) < 0 {
			return false
		}
	}
	return true
}

// FrontFacing reports whether the triangle a, b, c, given in y-down
// screen coordinates, appears counter-clockwise to the viewer.
// Degenerate triangles are not front facing.
func FrontFacing(a, b, c vec2) bool {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab[0]*ac[1]-ab[1]*ac[0] < 0
}

// MaxClipVertices bounds the polygon Clip can return. Every boundary
// cuts at most one corner off a convex polygon.
const MaxClipVertices = 3 + len(boundaries)

// Clipper clips triangles against the clip volume with the
// Sutherland-Hodgman algorithm. The zero value is ready to use and
// holds its own scratch space, so it must not be shared between
// goroutines.
type Clipper struct {
	buf [2][MaxClipVertices]vec4
}

// Clip returns the convex polygon left of the triangle a, b, c, or
// nothing if it lies entirely outside. The result aliases the Clipper
// and is valid until the next call.
func (cl *Clipper) Clip(a, b, c vec4) []vec4 {
	poly := append(cl.buf[0][:0], a, b, c)
	for i, dist := range boundaries {
		out := cl.buf[(i+1)%2][:0]
		prev := poly[len(poly)-1]
		dPrev := dist(prev)
		for _, cur := range poly {
			dCur := dist(cur)
			if (dPrev < 0) != (dCur < 0) {
				t := dPrev / (dPrev - dCur)
				out = append(out, prev.Add(cur.Sub(prev).Mul(t)))
			}
			if dCur >= 0 {
				out = append(out, cur)
			}
			prev, dPrev = cur, dCur
		}
		if len(out) == 0 {
			return nil
		}
		poly = out
	}
	return poly
}
