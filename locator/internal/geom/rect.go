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

// Прямокутники: в'юпорт камери, приблизні межі гравця, зони HUD.

package geom

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Rect - прямокутник вирівняний по осях
// (X, Y) - лівий верхній кут, W та H не від'ємні
type Rect[F constraints.Float] struct {
	X, Y F
	W, H F
}

// RectFromPoints будує прямокутник з двох протилежних кутів
func RectFromPoints[F constraints.Float](a, b Vec2[F]) Rect[F] {
	lo, hi := a.Min(b), a.Max(b)
	return Rect[F]{X: lo[0], Y: lo[1], W: hi[0] - lo[0], H: hi[1] - lo[1]}
}

// Min - лівий верхній кут
func (r Rect[F]) Min() Vec2[F] { return Vec2[F]{r.X, r.Y} }

// Max - правий нижній кут
func (r Rect[F]) Max() Vec2[F] { return Vec2[F]{r.X + r.W, r.Y + r.H} }

// Center - центр прямокутника
func (r Rect[F]) Center() Vec2[F] { return Vec2[F]{r.X + r.W/2, r.Y + r.H/2} }

// Contains перевіряє чи точка лежить в [Min, Max)
func (r Rect[F]) Contains(p Vec2[F]) bool {
	return r.X <= p[0] && p[0] < r.X+r.W && r.Y <= p[1] && p[1] < r.Y+r.H
}

// Interior перевіряє чи точка лежить строго всередині
func (r Rect[F]) Interior(p Vec2[F]) bool {
	return r.X < p[0] && p[0] < r.X+r.W && r.Y < p[1] && p[1] < r.Y+r.H
}

// Intersects перевіряє чи два прямокутники перекриваються
// Дотик краями не рахується
func (r Rect[F]) Intersects(other Rect[F]) bool {
	return other.X < r.X+r.W && r.X < other.X+other.W &&
		other.Y < r.Y+r.H && r.Y < other.Y+other.H
}

// WithIn потрібен для bvh.TouchPoint
func (r Rect[F]) WithIn(p Vec2[F]) bool { return r.Contains(p) }

// Touch потрібен для bvh.TouchBound
func (r Rect[F]) Touch(other Rect[F]) bool { return r.Intersects(other) }

// Union повертає найменший прямокутник що містить обидва
func (r Rect[F]) Union(other Rect[F]) Rect[F] {
	return RectFromPoints(r.Min().Min(other.Min()), r.Max().Max(other.Max()))
}

// Surface - периметр, ціна вузла для bvh
func (r Rect[F]) Surface() F { return (r.W + r.H) * 2 }

// ErrDegenerateInset повертається коли відступ не лишає місця всередині прямокутника
var ErrDegenerateInset = errors.New("inset offset degenerates the rectangle")

// MaxInset - найбільший допустимий відступ для r
// Всередині завжди лишається хоча б одна одиниця по меншій стороні
func (r Rect[F]) MaxInset() F {
	m := (min(r.W, r.H) - 1) / 2
	if m < 0 {
		return 0
	}
	return m
}

// Inset стискає прямокутник на offset з кожного боку.
// Від'ємний відступ або відступ від половини меншої сторони і більше
// це помилка конфігурації: повертаємо ErrDegenerateInset разом з
// прямокутником, стиснутим на обмежений відступ.
func (r Rect[F]) Inset(offset F) (Rect[F], error) {
	var err error
	if offset < 0 || 2*offset >= min(r.W, r.H) {
		err = fmt.Errorf("%w: offset %v, size %vx%v", ErrDegenerateInset, offset, r.W, r.H)
		offset = clamp(offset, 0, r.MaxInset())
	}
	return Rect[F]{
		X: r.X + offset,
		Y: r.Y + offset,
		W: r.W - 2*offset,
		H: r.H - 2*offset,
	}, err
}
