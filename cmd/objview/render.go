package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/thedaneeffect/objloader/internal/geom"
)

// ebiten indexes triangles with uint16, so batches are flushed before
// they outgrow it. One clipped triangle adds at most
// (geom.MaxClipVertices-2)*3 vertices.
const maxBatchVertices = math.MaxUint16 - (geom.MaxClipVertices-2)*3

var whiteSubImage *ebiten.Image

func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

type viewport struct {
	w, h         int
	wHalf, hHalf float
}

type renderer struct {
	view     mat4
	proj     mat4
	viewport viewport
	light    vec3 // view space

	// statistics
	drawnTriangles int

	// scratch buffers reused between frames
	clipPoints []vec4
	vertices   []ebiten.Vertex
	indices    []uint16
	clipper    geom.Clipper
}

func (r *renderer) setViewport(w, h int) {
	r.viewport = viewport{w: w, h: h, wHalf: float(w) / 2, hHalf: float(h) / 2}
}

func viewportTransform(ndc, half float) float {
	return half*ndc + half
}

// shade maps a face normal to a grey level using a fixed headlight.
func (r *renderer) shade(n vec3) float {
	return 0.2 + 0.8*max(0, n.Dot(r.light))
}

// drawMesh projects, clips, culls and draws every triangle of m.
func (r *renderer) drawMesh(target *ebiten.Image, m *geom.Mesh, model mat4) {
	modelView := r.view.Mul4(model)
	mvp := r.proj.Mul4(modelView)

	r.clipPoints = r.clipPoints[:0]
	for _, p := range m.Points {
		r.clipPoints = append(r.clipPoints, mvp.Mul4x1(p.Vec4(1)))
	}

	r.drawnTriangles = 0
	for i, t := range m.Triangles {
		a := r.clipPoints[t.V[0]]
		b := r.clipPoints[t.V[1]]
		c := r.clipPoints[t.V[2]]

		grey := r.shade(modelView.Mul4x1(m.FaceNormal(i).Vec4(0)).Vec3())

		if geom.InsideClipVolume(a) && geom.InsideClipVolume(b) && geom.InsideClipVolume(c) {
			r.pushTriangle(a, b, c, grey)
		} else {
			poly := r.clipper.Clip(a, b, c)
			for j := 2; j < len(poly); j++ {
				r.pushTriangle(poly[0], poly[j-1], poly[j], grey)
			}
		}

		if len(r.vertices) >= maxBatchVertices {
			r.flush(target)
		}
	}
	r.flush(target)
}

// pushTriangle converts a clip-space triangle to screen space and queues
// it unless it faces away from the camera.
func (r *renderer) pushTriangle(a, b, c vec4, grey float) {
	var out [3]ebiten.Vertex
	for k, p := range [3]vec4{a, b, c} {
		invW := 1 / p.W()
		out[k].DstX = viewportTransform(p.X()*invW, r.viewport.wHalf)
		out[k].DstY = float(r.viewport.h) - viewportTransform(p.Y()*invW, r.viewport.hHalf)
		out[k].SrcX = 1
		out[k].SrcY = 1
		out[k].ColorR = grey
		out[k].ColorG = grey
		out[k].ColorB = grey
		out[k].ColorA = 1
	}

	if !geom.FrontFacing(
		vec2{out[0].DstX, out[0].DstY},
		vec2{out[1].DstX, out[1].DstY},
		vec2{out[2].DstX, out[2].DstY},
	) {
		return
	}

	first := uint16(len(r.vertices))
	r.vertices = append(r.vertices, out[:]...)
	r.indices = append(r.indices, first, first+1, first+2)
	r.drawnTriangles++
}

func (r *renderer) flush(target *ebiten.Image) {
	if len(r.indices) > 0 {
		target.DrawTriangles(r.vertices, r.indices, white(), &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})
	}
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}
