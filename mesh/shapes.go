// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/xyzedit/geom"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultSegs is the default number of radial segments for round shapes.
const DefaultSegs = 16

// NewBox returns a box (cuboid) of the given size centered at the origin.
func NewBox(size mgl32.Vec3) *Mesh {
	return NewBoxAt(mgl32.Vec3{}, size)
}

// NewBoxAt returns a box of the given size centered at center.
func NewBoxAt(center, size mgl32.Vec3) *Mesh {
	ms := New("box")
	h := size.Mul(0.5)
	bx := geom.BoxOf(center.Sub(h), center.Add(h))
	var ix [8]uint32
	for i, c := range geom.Corners(bx) {
		ix[i] = ms.AddVertex(c)
	}
	// corner order: lll llu lul ull luu ulu uul uuu
	ms.AddQuad(ix[0], ix[2], ix[6], ix[3]) // -z
	ms.AddQuad(ix[1], ix[5], ix[7], ix[4]) // +z
	ms.AddQuad(ix[0], ix[1], ix[4], ix[2]) // -x
	ms.AddQuad(ix[3], ix[6], ix[7], ix[5]) // +x
	ms.AddQuad(ix[0], ix[3], ix[5], ix[1]) // -y
	ms.AddQuad(ix[2], ix[4], ix[7], ix[6]) // +y
	return ms
}

// NewSphere returns a UV sphere of the given radius centered at center,
// with segs segments around and segs/2 (min 2) segments in elevation.
func NewSphere(center mgl32.Vec3, radius float32, segs int) *Mesh {
	ms := New("sphere")
	segs = max(segs, 3)
	rings := max(segs/2, 2)
	for r := 0; r <= rings; r++ {
		elev := math32.Pi * float32(r) / float32(rings)
		sy, cy := math32.Sincos(elev)
		for s := 0; s <= segs; s++ {
			az := 2 * math32.Pi * float32(s) / float32(segs)
			sx, cx := math32.Sincos(az)
			ms.AddVertex(center.Add(mgl32.Vec3{radius * sy * cx, radius * cy, radius * sy * sx}))
		}
	}
	row := uint32(segs + 1)
	for r := uint32(0); r < uint32(rings); r++ {
		for s := uint32(0); s < uint32(segs); s++ {
			a := r*row + s
			b := a + row
			ms.AddQuad(a, b, b+1, a+1)
		}
	}
	return ms
}

// perpendicular returns two unit vectors perpendicular to the unit
// vector dir and to each other.
func perpendicular(dir mgl32.Vec3) (u, v mgl32.Vec3) {
	ref := mgl32.Vec3{0, 1, 0}
	if math32.Abs(dir.Dot(ref)) > 0.9 {
		ref = mgl32.Vec3{1, 0, 0}
	}
	u = dir.Cross(ref).Normalize()
	v = dir.Cross(u)
	return
}

// ring adds segs vertices on a circle of radius rad around center,
// in the plane perpendicular to dir, returning the first index.
func (ms *Mesh) ring(center, u, v mgl32.Vec3, rad float32, segs int) uint32 {
	first := uint32(len(ms.Vertices))
	for s := 0; s < segs; s++ {
		sn, cs := math32.Sincos(2 * math32.Pi * float32(s) / float32(segs))
		ms.AddVertex(center.Add(u.Mul(rad * cs)).Add(v.Mul(rad * sn)))
	}
	return first
}

// connectRings adds the quads between two rings of segs vertices.
func (ms *Mesh) connectRings(r0, r1 uint32, segs int) {
	n := uint32(segs)
	for s := uint32(0); s < n; s++ {
		s1 := (s + 1) % n
		ms.AddQuad(r0+s, r0+s1, r1+s1, r1+s)
	}
}

// capRing adds a fan of triangles closing the ring at the center point.
func (ms *Mesh) capRing(r0 uint32, center mgl32.Vec3, segs int) {
	c := ms.AddVertex(center)
	n := uint32(segs)
	for s := uint32(0); s < n; s++ {
		ms.AddTriangle(c, r0+(s+1)%n, r0+s)
	}
}

// NewTube returns a closed cylinder of the given diameter from one point
// to another. It returns an empty mesh if the points coincide.
func NewTube(from, to mgl32.Vec3, diameter float32, segs int) *Mesh {
	ms := New("tube")
	ms.addTube(from, to, diameter, segs)
	return ms
}

func (ms *Mesh) addTube(from, to mgl32.Vec3, diameter float32, segs int) {
	dir, ok := geom.SafeNormalize(to.Sub(from))
	if !ok || diameter <= 0 {
		return
	}
	segs = max(segs, 3)
	u, v := perpendicular(dir)
	r0 := ms.ring(from, u, v, diameter/2, segs)
	r1 := ms.ring(to, u, v, diameter/2, segs)
	ms.connectRings(r0, r1, segs)
	ms.capRing(r0, from, segs)
	ms.capRing(r1, to, segs)
}

// NewCone returns a closed cone with the given base diameter,
// from the base center to the tip.
func NewCone(base, tip mgl32.Vec3, diameter float32, segs int) *Mesh {
	ms := New("cone")
	ms.addCone(base, tip, diameter, segs)
	return ms
}

func (ms *Mesh) addCone(base, tip mgl32.Vec3, diameter float32, segs int) {
	dir, ok := geom.SafeNormalize(tip.Sub(base))
	if !ok || diameter <= 0 {
		return
	}
	segs = max(segs, 3)
	u, v := perpendicular(dir)
	r0 := ms.ring(base, u, v, diameter/2, segs)
	ms.capRing(r0, base, segs)
	t := ms.AddVertex(tip)
	n := uint32(segs)
	for s := uint32(0); s < n; s++ {
		ms.AddTriangle(r0+s, r0+(s+1)%n, t)
	}
}

// NewArrow returns an arrow from one point to another: a shaft of the
// given diameter and a cone head twice as wide, of the given head length
// (clamped to the arrow length).
func NewArrow(from, to mgl32.Vec3, diameter, headLength float32, segs int) *Mesh {
	ms := New("arrow")
	d := to.Sub(from)
	ln := d.Len()
	if ln < geom.Epsilon {
		return ms
	}
	headLength = math32.Min(headLength, ln)
	neck := to.Sub(d.Mul(headLength / ln))
	ms.addTube(from, neck, diameter, segs)
	ms.addCone(neck, to, 2*diameter, segs)
	return ms
}

// NewTorus returns a ring of the given radius around center, lying in
// the plane perpendicular to axis, with the given tube diameter.
func NewTorus(center, axis mgl32.Vec3, radius, diameter float32, segs int) *Mesh {
	ms := New("torus")
	ax, ok := geom.SafeNormalize(axis)
	if !ok || radius <= 0 || diameter <= 0 {
		return ms
	}
	segs = max(segs, 3)
	tubeSegs := max(segs/4, 4)
	u, v := perpendicular(ax)
	first := uint32(len(ms.Vertices))
	for s := 0; s < segs; s++ {
		sn, cs := math32.Sincos(2 * math32.Pi * float32(s) / float32(segs))
		radial := u.Mul(cs).Add(v.Mul(sn))
		c := center.Add(radial.Mul(radius))
		ms.ring(c, radial, ax, diameter/2, tubeSegs)
	}
	for s := 0; s < segs; s++ {
		r0 := first + uint32(s*tubeSegs)
		r1 := first + uint32(((s+1)%segs)*tubeSegs)
		ms.connectRings(r0, r1, tubeSegs)
	}
	return ms
}

// NewPolyline returns a pipe through the given points, with a sphere
// at each joint so the segments connect smoothly.
func NewPolyline(points []mgl32.Vec3, diameter float32, segs int) *Mesh {
	ms := New("polyline")
	for i, p := range points {
		if i > 0 {
			ms.addTube(points[i-1], p, diameter, segs)
		}
		ms.Append(NewSphere(p, diameter/2, segs))
	}
	return ms
}

// NewBoundingBox returns a wireframe box around the given bounds, with
// one tube of the given diameter per edge.
func NewBoundingBox(bx math32.Box3, diameter float32) *Mesh {
	ms := New("bounding-box")
	if bx.IsEmpty() {
		return ms
	}
	c := geom.Corners(bx)
	// corner order: lll llu lul ull luu ulu uul uuu
	edges := [12][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 4}, {1, 5}, {2, 4},
		{2, 6}, {3, 5}, {3, 6},
		{4, 7}, {5, 7}, {6, 7},
	}
	for _, e := range edges {
		ms.addTube(c[e[0]], c[e[1]], diameter, 6)
	}
	return ms
}

// NewGrid returns a square grid of tubes on the XZ (Y = 0) plane,
// covering -extent..extent with lines every step.
func NewGrid(extent, step, diameter float32) *Mesh {
	ms := New("grid")
	if step <= 0 || extent <= 0 {
		return ms
	}
	n := int(math32.Floor(extent / step))
	for i := -n; i <= n; i++ {
		x := float32(i) * step
		ms.addTube(mgl32.Vec3{x, 0, -extent}, mgl32.Vec3{x, 0, extent}, diameter, 4)
		ms.addTube(mgl32.Vec3{-extent, 0, x}, mgl32.Vec3{extent, 0, x}, diameter, 4)
	}
	return ms
}
