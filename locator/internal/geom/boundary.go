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

// Йоу, чат! Тут найцікавіша математика компаса.
// Гравець стоїть всередині екрану, його друг десь за краєм.
// Проводимо відрізок від одного до іншого і шукаємо де він
// перетинає рамку, трохи відсунуту від краю екрану. Саме там
// малюємо бульбашку з головою друга і стрілку до нього.

package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Segment - відрізок від A до B
type Segment[F constraints.Float] struct {
	A, B Vec2[F]
}

// Порядок сторін рамки
const (
	EdgeLeft = iota
	EdgeBottom
	EdgeTop
	EdgeRight
)

// Boundary - рамка в'юпорту, стиснута на відступ
type Boundary[F constraints.Float] struct {
	Outer  Rect[F]       // вихідний в'юпорт
	Inner  Rect[F]       // стиснутий прямокутник
	Offset F             // фактичний відступ після масштабування та обмеження
	Edges  [4]Segment[F] // ліва, нижня, верхня, права
}

// InsetBoundary будує рамку всередині r.
// Відступ множиться на scale (uiScale / zoom) перед відніманням.
// Помилка означає що відступ завеликий: рамка все одно побудована,
// але з обмеженим відступом (див. Rect.Inset).
func InsetBoundary[F constraints.Float](r Rect[F], offset, scale F) (Boundary[F], error) {
	inner, err := r.Inset(offset * scale)
	lo, hi := inner.Min(), inner.Max()
	topLeft := lo
	bottomLeft := Vec2[F]{lo[0], hi[1]}
	bottomRight := hi
	topRight := Vec2[F]{hi[0], lo[1]}
	return Boundary[F]{
		Outer:  r,
		Inner:  inner,
		Offset: inner.X - r.X,
		Edges: [4]Segment[F]{
			EdgeLeft:   {topLeft, bottomLeft},
			EdgeBottom: {bottomLeft, bottomRight},
			EdgeTop:    {topLeft, topRight},
			EdgeRight:  {topRight, bottomRight},
		},
	}, err
}

// IntersectSegments шукає точку перетину відрізків a1-a2 та b1-b2.
// Паралельні та колінеарні відрізки вважаються такими, що не перетинаються.
// Кінці відрізків включно.
func IntersectSegments[F constraints.Float](a1, a2, b1, b2 Vec2[F]) (Vec2[F], bool) {
	da := a2.Sub(a1)
	db := b2.Sub(b1)
	d := da.Cross(db)
	if d == 0 {
		return Vec2[F]{}, false
	}
	w := b1.Sub(a1)
	ua := w.Cross(db) / d
	ub := w.Cross(da) / d
	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return Vec2[F]{}, false
	}
	return a1.Lerp(a2, ua), true
}

// Crossing перебирає сторони рамки і повертає перший перетин з відрізком from-to
func (b Boundary[F]) Crossing(from, to Vec2[F]) (Vec2[F], bool) {
	for _, e := range b.Edges {
		if p, ok := IntersectSegments(from, to, e.A, e.B); ok {
			return p, true
		}
	}
	return Vec2[F]{}, false
}

// FindBoundaryCrossing - те саме що Boundary.Crossing.
// Очікує viewer строго всередині рамки і target зовні в'юпорту.
func FindBoundaryCrossing[F constraints.Float](viewer, target Vec2[F], b Boundary[F]) (Vec2[F], bool) {
	return b.Crossing(viewer, target)
}

// Clip - параметричне відсікання Лянга-Барскі по внутрішньому прямокутнику.
// from має лежати всередині (або на краю), інакше повертаємо false.
// Якщо to теж всередині, перетину немає.
func (b Boundary[F]) Clip(from, to Vec2[F]) (Vec2[F], bool) {
	return clipInside(from, to, b.Inner)
}

// ClipToInsetRectangle стискає r на offset і відсікає відрізок p1-p2 по ньому.
// Завеликий або від'ємний відступ обмежується як у Rect.Inset: відсікання
// йде по обмеженому прямокутнику, а разом з результатом повертається ErrDegenerateInset.
func ClipToInsetRectangle[F constraints.Float](p1, p2 Vec2[F], r Rect[F], offset F) (Vec2[F], bool, error) {
	inner, err := r.Inset(offset)
	p, ok := clipInside(p1, p2, inner)
	return p, ok, err
}

func clipInside[F constraints.Float](from, to Vec2[F], r Rect[F]) (Vec2[F], bool) {
	d := to.Sub(from)
	lo, hi := r.Min(), r.Max()
	p := [4]F{-d[0], d[0], -d[1], d[1]}
	q := [4]F{from[0] - lo[0], hi[0] - from[0], from[1] - lo[1], hi[1] - from[1]}

	t, found := F(1), false
	for i := range p {
		if q[i] < 0 {
			return Vec2[F]{}, false // початок зовні
		}
		if p[i] <= 0 {
			continue // рух від цієї сторони або вздовж неї
		}
		if s := q[i] / p[i]; s <= t {
			t, found = s, true
		}
	}
	if !found {
		return Vec2[F]{}, false
	}
	return from.Lerp(to, t), true
}

// ClampToBoundary повертає найближчу до p точку на краю прямокутника r.
// Використовується як детермінований запасний варіант, коли перетин не знайдено.
func ClampToBoundary[F constraints.Float](p Vec2[F], r Rect[F]) Vec2[F] {
	lo, hi := r.Min(), r.Max()
	c := Vec2[F]{clamp(p[0], lo[0], hi[0]), clamp(p[1], lo[1], hi[1])}
	if !r.Interior(c) {
		return c
	}
	// Точка всередині: штовхаємо до найближчої сторони.
	// При рівних відстанях порядок: ліва, нижня, верхня, права.
	dist := [4]F{
		EdgeLeft:   c[0] - lo[0],
		EdgeBottom: hi[1] - c[1],
		EdgeTop:    c[1] - lo[1],
		EdgeRight:  hi[0] - c[0],
	}
	best := EdgeLeft
	for i := range dist {
		if dist[i] < dist[best] {
			best = i
		}
	}
	switch best {
	case EdgeLeft:
		c[0] = lo[0]
	case EdgeBottom:
		c[1] = hi[1]
	case EdgeTop:
		c[1] = lo[1]
	default:
		c[0] = hi[0]
	}
	return c
}

// ArrowAngle - кут від точки на рамці до цілі, 0 дивиться вздовж +X.
// Спрайт стрілки намальований носом вгору, тому при малюванні додають чверть оберту.
func ArrowAngle[F constraints.Float](from, to Vec2[F]) F {
	return F(math.Atan2(float64(to[1]-from[1]), float64(to[0]-from[0])))
}

// QuarterTurn - поворот спрайту стрілки, намальованої носом вгору
const QuarterTurn = math.Pi / 2
