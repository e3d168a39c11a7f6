// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"cogentcore.org/xyzedit/events"
	"cogentcore.org/xyzedit/geom"
	"cogentcore.org/xyzedit/layer"
	"cogentcore.org/xyzedit/render"
	"cogentcore.org/xyzedit/settings"
	"cogentcore.org/xyzedit/shape"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/muesli/termenv"
)

// errOffScreen is returned when a scripted point is not visible.
var errOffScreen = errors.New("point is behind the camera")

// demo is a headless editing session driven by synthetic pointer events.
type demo struct {
	out  *termenv.Output
	vp   *render.Viewport
	view *layer.View
	edit *layer.ManipulatorLayer
	host *render.Overlay
	cube *shape.Cube
	lbl  *shape.Label
}

func newDemo(w io.Writer, st *settings.Settings) *demo {
	sc := render.NewScene()
	vp := render.NewViewport(sc, image.Pt(400, 300))
	cs := st.Camera
	vp.Camera.FOV, vp.Camera.Near, vp.Camera.Far = cs.FOV, cs.Near, cs.Far
	vp.Camera.Pos = mgl32.Vec3{0, cs.Distance / 2, cs.Distance}
	vp.Camera.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	dm := &demo{out: termenv.NewOutput(w), vp: vp, host: &render.Overlay{}}
	dm.view = layer.NewView(sc, vp, st)
	dm.view.AddLayer(layer.NewGridLayer("grid", 5, 1))

	dm.edit = layer.NewManipulatorLayer("edit")
	dm.cube = shape.NewCube("cube", 2)
	sp := shape.NewSphere("sphere", 0.5)
	sp.SetTransform(geom.Translation(mgl32.Vec3{-3, 0, 0}))
	pl := shape.NewPolyline("path", mgl32.Vec3{-2, 0, -3}, mgl32.Vec3{0, 0, -4}, mgl32.Vec3{2, 0, -3})
	dm.lbl = shape.NewLabel("cube-label", "cube", mgl32.Vec3{0, 1.5, 0})
	for _, sh := range []shape.Shape{dm.cube, sp, pl, dm.lbl} {
		dm.edit.AddShape(sh)
	}
	dm.edit.OnSelectionChanged(func(selected []shape.Shape) {
		dm.printf("selection changed: %s", names(selected))
	})
	dm.view.AddLayer(dm.edit)
	dm.view.AddLayer(layer.NewPresenterLayer("labels", dm.edit, dm.host))
	return dm
}

func names(shapes []shape.Shape) string {
	nms := make([]string, len(shapes))
	for i, sh := range shapes {
		nms[i] = sh.Name()
	}
	return "[" + strings.Join(nms, " ") + "]"
}

func (dm *demo) step(title string) {
	fmt.Fprintln(dm.out, dm.out.String("== "+title).Bold().Foreground(dm.out.Color("6")))
}

func (dm *demo) printf(format string, args ...any) {
	fmt.Fprintf(dm.out, "   "+format+"\n", args...)
}

// screen returns the pixel of the world point.
func (dm *demo) screen(p mgl32.Vec3) (image.Point, error) {
	sp, ok := dm.vp.Project(p)
	if !ok {
		return image.Point{}, fmt.Errorf("%w: %v", errOffScreen, p)
	}
	return image.Pt(int(math32.Round(sp.X())), int(math32.Round(sp.Y()))), nil
}

func (dm *demo) mouse(typ events.Types, pt image.Point) {
	dm.view.HandleEvent(events.NewMouse(typ, events.Left, pt, 0))
}

func (dm *demo) click(p mgl32.Vec3) error {
	pt, err := dm.screen(p)
	if err != nil {
		return err
	}
	dm.mouse(events.MouseDown, pt)
	dm.mouse(events.MouseUp, pt)
	return nil
}

// drag presses at the first world point and drags through the others.
func (dm *demo) drag(pts ...mgl32.Vec3) error {
	prev, err := dm.screen(pts[0])
	if err != nil {
		return err
	}
	dm.mouse(events.MouseDown, prev)
	for _, p := range pts[1:] {
		pt, err := dm.screen(p)
		if err != nil {
			return err
		}
		dm.view.HandleEvent(events.NewMouseMove(events.Left, pt, prev, 0))
		prev = pt
	}
	if act := dm.edit.Active(); act != nil {
		dm.printf("dragged %s: value %.2f", act.Param, act.Value)
	}
	dm.mouse(events.MouseUp, prev)
	return nil
}

func (dm *demo) printLabel() {
	it, ok := dm.host.OverlayPosition(dm.lbl)
	if !ok {
		dm.printf("label: not shown")
		return
	}
	dm.printf("label %q at (%.0f, %.0f) visible %v", dm.lbl.Text, it.Pos.X(), it.Pos.Y(), it.Visible)
}

func (dm *demo) run() error {
	dm.step("scene")
	dm.printf("%d visuals, %d layers", dm.vp.Scene.Len(), len(dm.view.Layers()))
	dm.printLabel()

	dm.step("click cube")
	if err := dm.click(mgl32.Vec3{0.3, 1, 0.3}); err != nil {
		return err
	}
	if !dm.edit.Engine.IsSelected(dm.cube) {
		return errors.New("cube was not selected")
	}
	dm.printf("state %v, %d manipulators", dm.cube.State(), len(dm.edit.Manipulators()))

	dm.step("drag side length")
	half := dm.cube.SideLength / 2
	if err := dm.drag(mgl32.Vec3{half + 0.4, 0, 0}, mgl32.Vec3{half + 0.9, 0, 0}, mgl32.Vec3{half + 1.4, 0, 0}); err != nil {
		return err
	}
	dm.printf("side length %.2f", dm.cube.SideLength)

	dm.step("rotate")
	r := dm.cube.SideLength * 0.9
	s, c := math32.Sincos(mgl32.DegToRad(30))
	if err := dm.drag(mgl32.Vec3{0, 0, r}, mgl32.Vec3{r * s, 0, r * c}); err != nil {
		return err
	}
	up := geom.TransformDir(mgl32.Vec3{0, 0, 1}, dm.cube.Transform())
	dm.printf("front face now faces (%.2f, %.2f, %.2f)", up.X(), up.Y(), up.Z())

	dm.step("orbit camera")
	dm.vp.Camera.Orbit(20, 0)
	dm.view.CameraChanged()
	dm.printLabel()

	dm.step("click empty space")
	if err := dm.click(mgl32.Vec3{4, 4, 4}); err != nil {
		return err
	}
	dm.printf("state %v, selection %s", dm.cube.State(), names(dm.edit.Selected()))
	return nil
}

// runDemo runs the scripted session, printing each step.
func runDemo(w io.Writer, st *settings.Settings) error {
	if err := newDemo(w, st).run(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return nil
}
