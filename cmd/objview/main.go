// Command objview shows an OBJ model in a window.
//
//	objview [-cpuprofile file] [-memprofile file] model.obj
//
// Drag with the left mouse button to look around, hold W/A/S/D or the
// arrow keys while dragging to move and use the wheel to change speed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/thedaneeffect/objloader/internal/geom"
	"github.com/thedaneeffect/objloader/internal/source"
	"github.com/thedaneeffect/objloader/obj"
)

const (
	windowWidth  = 1024
	windowHeight = 768
)

type (
	float = float32
	vec2  = mgl.Vec2
	vec3  = mgl.Vec3
	vec4  = mgl.Vec4
	mat4  = mgl.Mat4
)

var cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memProfile = flag.String("memprofile", "", "write memory profile to `file`")

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: objview [flags] model.obj")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if *memProfile != "" {
		defer func() {
			f, err := os.Create(*memProfile)
			if err != nil {
				log.Fatal("could not create memory profile: ", err)
			}
			defer f.Close()
			runtime.GC() // get up-to-date statistics
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Fatal("could not write memory profile: ", err)
			}
		}()
	}

	path := flag.Arg(0)
	mesh, err := loadMesh(path)
	if err != nil {
		var perr *obj.Error
		if errors.As(err, &perr) && perr.Line > 0 {
			log.Fatalf("%v\n  Line %d: %s", err, perr.Line, perr.Text)
		}
		log.Fatal(err)
	}
	mesh.Normalize()

	g := &game{
		mesh:      mesh,
		moveSpeed: 0.05,
		camera:    camera{pos: vec3{0, 0, 3}},
		renderer:  &renderer{light: vec3{0, 0, 1}},
	}
	g.camera.update()

	ebiten.SetWindowTitle("objview - " + path)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func loadMesh(path string) (*geom.Mesh, error) {
	l := obj.New()
	if source.Compressed(path) {
		r, err := source.Open(path)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		if err := l.ParseReader(path, r); err != nil {
			return nil, err
		}
	} else if err := l.Parse(path); err != nil {
		return nil, err
	}
	return geom.FromLoader(l)
}

type camera struct {
	pitch float
	yaw   float
	pos   vec3

	dragX    int
	dragY    int
	dragging bool

	up      vec3
	forward vec3
	right   vec3

	view mat4
}

// update recomputes the basis vectors and view matrix from pitch, yaw
// and position.
func (c *camera) update() {
	rot := mgl.Ident4()
	rot = rot.Mul4(mgl.HomogRotate3DX(c.pitch))
	rot = rot.Mul4(mgl.HomogRotate3DY(c.yaw))

	c.right = rot.Row(0).Vec3()
	c.up = rot.Row(1).Vec3()
	c.forward = rot.Row(2).Vec3().Mul(-1)

	c.view = rot.Mul4(mgl.Translate3D(-c.pos.X(), -c.pos.Y(), -c.pos.Z()))
}

type game struct {
	mesh      *geom.Mesh
	camera    camera
	renderer  *renderer
	spin      float
	paused    bool
	moveSpeed float
	frameTime time.Duration
}

func (g *game) Layout(outerWidth, outerHeight int) (int, int) {
	return outerWidth, outerHeight
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.spin += 0.01
	}

	if _, yoff := ebiten.Wheel(); yoff != 0 {
		g.moveSpeed += float(yoff) / 100
	}
	g.moveSpeed = max(g.moveSpeed, 0.01)

	c := &g.camera
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()

		// start dragging on the next update to avoid snapping
		if !c.dragging {
			c.dragging = true
		} else {
			c.pitch = mgl.Clamp(c.pitch+float(cy-c.dragY)/100, -math.Pi/2, math.Pi/2)
			c.yaw += float(cx-c.dragX) / 100
		}
		c.dragX = cx
		c.dragY = cy

		if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
			c.pos = c.pos.Add(c.forward.Mul(g.moveSpeed))
		} else if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
			c.pos = c.pos.Sub(c.forward.Mul(g.moveSpeed))
		}
		if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
			c.pos = c.pos.Add(c.right.Mul(g.moveSpeed))
		} else if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
			c.pos = c.pos.Sub(c.right.Mul(g.moveSpeed))
		}
	} else {
		c.dragging = false
	}
	c.update()

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	defer func(t time.Time) {
		ft := time.Since(t)
		if g.frameTime == 0 {
			g.frameTime = ft
		} else {
			g.frameTime += (ft - g.frameTime) / 2
		}
	}(time.Now())

	r := g.renderer
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	r.setViewport(w, h)
	r.proj = mgl.Perspective(math.Pi/3, float(w)/float(max(h, 1)), 0.1, 100)
	r.view = g.camera.view

	screen.Fill(color.RGBA{40, 40, 48, 255})

	model := mgl.HomogRotate3DY(g.spin)
	r.drawMesh(screen, g.mesh, model)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f FPS: %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 0, 0)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Ft: %v", g.frameTime), 0, 14)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Triangles: %d/%d", r.drawnTriangles, len(g.mesh.Triangles)), 0, 28)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Cam: %v", g.camera.pos), 0, 42)
}
