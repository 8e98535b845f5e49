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

// Вектори для екранної геометрії компаса.
// Все рахуємо в 2D: світ гри плаский, а екран тим паче.

package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec2 - двовимірна точка або зсув
// [0] - x (вправо), [1] - y (вниз, як на екрані)
type Vec2[F constraints.Float] [2]F

// X повертає горизонтальну координату
func (v Vec2[F]) X() F { return v[0] }

// Y повертає вертикальну координату
func (v Vec2[F]) Y() F { return v[1] }

// Add додає інший вектор до поточного
func (v Vec2[F]) Add(other Vec2[F]) Vec2[F] { return Vec2[F]{v[0] + other[0], v[1] + other[1]} }

// Sub віднімає інший вектор від поточного
func (v Vec2[F]) Sub(other Vec2[F]) Vec2[F] { return Vec2[F]{v[0] - other[0], v[1] - other[1]} }

// Mul множить вектор на скаляр
func (v Vec2[F]) Mul(k F) Vec2[F] { return Vec2[F]{v[0] * k, v[1] * k} }

// Dot - скалярний добуток
func (v Vec2[F]) Dot(other Vec2[F]) F { return v[0]*other[0] + v[1]*other[1] }

// Cross - z-компонента векторного добутку
// Нуль означає що вектори паралельні
func (v Vec2[F]) Cross(other Vec2[F]) F { return v[0]*other[1] - v[1]*other[0] }

// Max повертає вектор з максимальними координатами
func (v Vec2[F]) Max(other Vec2[F]) Vec2[F] { return Vec2[F]{max(v[0], other[0]), max(v[1], other[1])} }

// Min повертає вектор з мінімальними координатами
func (v Vec2[F]) Min(other Vec2[F]) Vec2[F] { return Vec2[F]{min(v[0], other[0]), min(v[1], other[1])} }

// Norm повертає довжину вектора
func (v Vec2[F]) Norm() F { return F(math.Hypot(float64(v[0]), float64(v[1]))) }

// Lerp лінійно інтерполює між v та other
// t=0 дає рівно v, t=1 дає other
func (v Vec2[F]) Lerp(other Vec2[F], t F) Vec2[F] {
	return Vec2[F]{v[0] + (other[0]-v[0])*t, v[1] + (other[1]-v[1])*t}
}

// Polar повертає одиничний вектор під кутом angle (радіани, 0 = +X)
func Polar[F constraints.Float](angle F) Vec2[F] {
	s, c := math.Sincos(float64(angle))
	return Vec2[F]{F(c), F(s)}
}

// clamp обмежує значення відрізком [lo, hi]
func clamp[F constraints.Float](v, lo, hi F) F {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
