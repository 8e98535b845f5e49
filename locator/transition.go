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

// Плавна зміна прозорості бульбашки.
// Значення залежить тільки від часу, тому частота кадрів ні на що не впливає.

package locator

import (
	"math"
	"time"
)

// retargetEpsilon - зміни цілі менші за це ігноруються
const retargetEpsilon = 1e-4

// Transition - стан переходу скалярного значення до цілі
type Transition struct {
	initial  float64
	target   float64
	start    time.Time
	duration time.Duration
}

// NewTransition створює завершений перехід, що стоїть на value
func NewTransition(value float64) Transition {
	return Transition{initial: value, target: value}
}

// Target повертає ціль переходу
func (t Transition) Target() float64 { return t.target }

// SetTarget починає новий перехід з поточного значення до target.
// Якщо ціль майже не змінилась, стан лишається тим самим.
func (t Transition) SetTarget(target float64, duration time.Duration, now time.Time) Transition {
	if math.Abs(target-t.target) <= retargetEpsilon {
		return t
	}
	return Transition{
		initial:  t.Value(now),
		target:   target,
		start:    now,
		duration: duration,
	}
}

// Value повертає значення на момент now.
// Після закінчення тривалості повертається рівно target.
func (t Transition) Value(now time.Time) float64 {
	elapsed := now.Sub(t.start)
	if t.Settled(now) {
		return t.target
	}
	progress := float64(elapsed) / float64(t.duration)
	return lerp(t.initial, t.target, ease(math.Max(progress, 0)))
}

// Settled повідомляє чи перехід завершився
func (t Transition) Settled(now time.Time) bool {
	return t.duration <= 0 || now.Sub(t.start) >= t.duration
}

// ease - суміш прискорення t² та гальмування 2t-t², вага самого t
func ease(t float64) float64 {
	t = math.Min(math.Max(t, 0), 1)
	return lerp(t*t, 2*t-t*t, t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
