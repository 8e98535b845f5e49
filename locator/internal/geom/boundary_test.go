// This file is part of CompassCore project.
// Copyright (C) 2026.  CompassCore authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package geom

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

type vec = Vec2[float64]
type rect = Rect[float64]

const eps = 1e-6

func near(a, b vec) bool {
	return math.Abs(a[0]-b[0]) < eps && math.Abs(a[1]-b[1]) < eps
}

func onEdge(p vec, r rect) bool {
	lo, hi := r.Min(), r.Max()
	inX := p[0] >= lo[0]-eps && p[0] <= hi[0]+eps
	inY := p[1] >= lo[1]-eps && p[1] <= hi[1]+eps
	if !inX || !inY {
		return false
	}
	return math.Abs(p[0]-lo[0]) < eps || math.Abs(p[0]-hi[0]) < eps ||
		math.Abs(p[1]-lo[1]) < eps || math.Abs(p[1]-hi[1]) < eps
}

func TestFindBoundaryCrossing_example(t *testing.T) {
	viewport := rect{0, 0, 800, 600}
	b, err := InsetBoundary(viewport, 50, 1)
	if err != nil {
		t.Fatal(err)
	}
	viewer, target := vec{400, 300}, vec{1000, 300}

	got, ok := FindBoundaryCrossing(viewer, target, b)
	if !ok || !near(got, vec{750, 300}) {
		t.Errorf("segments: got %v %v, want (750, 300)", got, ok)
	}
	clipped, ok := b.Clip(viewer, target)
	if !ok || !near(clipped, vec{750, 300}) {
		t.Errorf("clip: got %v %v, want (750, 300)", clipped, ok)
	}
	if a := ArrowAngle(got, target); math.Abs(a) > eps {
		t.Errorf("angle = %v, want 0", a)
	}
}

func TestInsetBoundary_edges(t *testing.T) {
	b, err := InsetBoundary(rect{0, 0, 800, 600}, 25, 2)
	if err != nil {
		t.Fatal(err)
	}
	if b.Inner != (rect{50, 50, 700, 500}) {
		t.Fatalf("inner = %v", b.Inner)
	}
	want := [4]Segment[float64]{
		EdgeLeft:   {vec{50, 50}, vec{50, 550}},
		EdgeBottom: {vec{50, 550}, vec{750, 550}},
		EdgeTop:    {vec{50, 50}, vec{750, 50}},
		EdgeRight:  {vec{750, 50}, vec{750, 550}},
	}
	if b.Edges != want {
		t.Errorf("edges = %v, want %v", b.Edges, want)
	}
}

func TestInsetBoundary_degenerate(t *testing.T) {
	for _, offset := range []float64{300, 500, -1} {
		b, err := InsetBoundary(rect{0, 0, 800, 600}, offset, 1)
		if !errors.Is(err, ErrDegenerateInset) {
			t.Errorf("offset %v: err = %v, want ErrDegenerateInset", offset, err)
		}
		if b.Inner.W < 1 || b.Inner.H < 1 {
			t.Errorf("offset %v: inner %v collapsed", offset, b.Inner)
		}
	}
}

func TestIntersectSegments(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 vec
		want           vec
		ok             bool
	}{
		{"cross", vec{0, 0}, vec{2, 2}, vec{0, 2}, vec{2, 0}, vec{1, 1}, true},
		{"touch end", vec{0, 0}, vec{1, 0}, vec{1, -1}, vec{1, 1}, vec{1, 0}, true},
		{"miss", vec{0, 0}, vec{1, 0}, vec{2, -1}, vec{2, 1}, vec{}, false},
		{"parallel", vec{0, 0}, vec{1, 0}, vec{0, 1}, vec{1, 1}, vec{}, false},
		{"collinear overlap", vec{0, 0}, vec{2, 0}, vec{1, 0}, vec{3, 0}, vec{}, false},
	}
	for _, tt := range tests {
		got, ok := IntersectSegments(tt.a1, tt.a2, tt.b1, tt.b2)
		if ok != tt.ok || (ok && !near(got, tt.want)) {
			t.Errorf("%s: got %v %v, want %v %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIntersectSegments_symmetry(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	pt := func() vec { return vec{rnd.Float64()*200 - 100, rnd.Float64()*200 - 100} }
	for i := 0; i < 5000; i++ {
		a1, a2, b1, b2 := pt(), pt(), pt(), pt()
		p, ok := IntersectSegments(a1, a2, b1, b2)
		q, ok2 := IntersectSegments(b1, b2, a1, a2)
		if ok != ok2 || (ok && !near(p, q)) {
			t.Fatalf("asymmetric for %v %v %v %v: %v %v / %v %v", a1, a2, b1, b2, p, ok, q, ok2)
		}
	}
}

func TestCrossing_property(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		r := rect{rnd.Float64()*100 - 50, rnd.Float64()*100 - 50, 50 + rnd.Float64()*1000, 50 + rnd.Float64()*1000}
		offset := rnd.Float64() * (min(r.W, r.H)/2 - 1)
		b, err := InsetBoundary(r, offset, 1)
		if err != nil {
			t.Fatal(err)
		}
		in := b.Inner
		p := vec{in.X + in.W*(0.01+0.98*rnd.Float64()), in.Y + in.H*(0.01+0.98*rnd.Float64())}
		// цілі зовні в'юпорту з усіх боків
		angle := rnd.Float64() * 2 * math.Pi
		q := r.Center().Add(Polar(angle).Mul(r.W + r.H))
		if r.Contains(q) {
			continue
		}

		got, ok := FindBoundaryCrossing(p, q, b)
		if !ok {
			t.Fatalf("no crossing for %v -> %v in %v", p, q, in)
		}
		if !onEdge(got, in) {
			t.Fatalf("crossing %v not on %v", got, in)
		}
		clipped, ok := b.Clip(p, q)
		if !ok || !near(got, clipped) {
			t.Fatalf("clip %v %v differs from segments %v", clipped, ok, got)
		}
	}
}

func TestClipToInsetRectangle(t *testing.T) {
	r := rect{0, 0, 800, 600}
	got, ok, err := ClipToInsetRectangle(vec{400, 300}, vec{400, -1000}, r, 50)
	if err != nil || !ok || !near(got, vec{400, 50}) {
		t.Errorf("up: got %v %v %v", got, ok, err)
	}
	if _, ok, _ := ClipToInsetRectangle(vec{400, 300}, vec{410, 310}, r, 50); ok {
		t.Errorf("target inside should not clip")
	}
	if _, ok, _ := ClipToInsetRectangle(vec{10, 10}, vec{-100, -100}, r, 50); ok {
		t.Errorf("start outside inset should not clip")
	}
}

func TestClipToInsetRectangle_degenerate(t *testing.T) {
	r := rect{0, 0, 800, 600}
	// 400 більше половини висоти, відступ обмежується до 299.5
	got, ok, err := ClipToInsetRectangle(vec{300, 300}, vec{300, -1000}, r, 400)
	if !errors.Is(err, ErrDegenerateInset) {
		t.Errorf("err = %v, want ErrDegenerateInset", err)
	}
	if !ok || !near(got, vec{300, 299.5}) {
		t.Errorf("got %v %v, want (300, 299.5) on the clamped inset", got, ok)
	}
}

func TestClampToBoundary(t *testing.T) {
	r := rect{50, 50, 700, 500}
	tests := []struct {
		p, want vec
	}{
		{vec{1000, 300}, vec{750, 300}},
		{vec{-10, -10}, vec{50, 50}},
		{vec{60, 300}, vec{50, 300}},
		{vec{400, 540}, vec{400, 550}},
		{vec{400, 300}, vec{400, 550}}, // рівно посередині по y, нижня сторона перша
	}
	for _, tt := range tests {
		if got := ClampToBoundary(tt.p, r); !near(got, tt.want) {
			t.Errorf("ClampToBoundary(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestArrowAngle(t *testing.T) {
	tests := []struct {
		to   vec
		want float64
	}{
		{vec{1, 0}, 0},
		{vec{0, 1}, math.Pi / 2},
		{vec{-1, 0}, math.Pi},
		{vec{0, -1}, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := ArrowAngle(vec{}, tt.to); math.Abs(got-tt.want) > eps {
			t.Errorf("ArrowAngle(0, %v) = %v, want %v", tt.to, got, tt.want)
		}
	}
}

func BenchmarkBoundary_Crossing(b *testing.B) {
	bound, _ := InsetBoundary(rect{0, 0, 1920, 1080}, 50, 1)
	for i := 0; i < b.N; i++ {
		bound.Crossing(vec{960, 540}, vec{float64(i % 5000), -400})
	}
}

func BenchmarkBoundary_Clip(b *testing.B) {
	bound, _ := InsetBoundary(rect{0, 0, 1920, 1080}, 50, 1)
	for i := 0; i < b.N; i++ {
		bound.Clip(vec{960, 540}, vec{float64(i % 5000), -400})
	}
}
