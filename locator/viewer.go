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

// Йоу, чат! Тут інтерфейси між компасом і грою-хостом.
// Компас нічого сам не малює: він видає список команд малювання,
// а хост відправляє їх у свій спрайт-батч, термінал чи що там у нього.

package locator

import "image"

// Indicator - тип індикатора на краю екрану
type Indicator int

const (
	IndicatorIcon  Indicator = iota // бульбашка з головою гравця
	IndicatorArrow                  // стрілка в бік гравця
)

func (i Indicator) String() string {
	switch i {
	case IndicatorIcon:
		return "icon"
	case IndicatorArrow:
		return "arrow"
	}
	return "unknown"
}

// Directive - одна команда малювання
type Directive struct {
	Kind     Indicator
	Entity   EntityID
	Icon     *Icon   // іконка для IndicatorIcon, nil для стрілки (спрайт стрілки у хоста)
	Position Vec2    // центр спрайту в екранних координатах інтерфейсу
	Rotation float64 // радіани
	Scale    float64
	Opacity  float64 // 0..1
	Depth    float64 // порядок по глибині
}

// Sink приймає команди малювання
type Sink interface {
	Submit(d Directive)
}

// SinkFunc дозволяє використовувати функцію як Sink
type SinkFunc func(d Directive)

// Submit викликає f(d)
func (f SinkFunc) Submit(d Directive) { f(d) }

// Compositor складає іконку з опису зовнішності
type Compositor interface {
	Composite(v VisualState) (*image.RGBA, error)
}

// VisibilityFilter вирішує чи показувати компас для гравця e
type VisibilityFilter func(v Viewer, e Entity) bool

// SameLocation - стандартний фільтр: той самий локальний екран і та сама локація
func SameLocation(v Viewer, e Entity) bool {
	return !e.SplitScreen && e.ID != v.ID && e.Location != "" && e.Location == v.Location
}

// OverlapPredicate перевіряє чи точка екрану лежить під елементом інтерфейсу
type OverlapPredicate interface {
	Overlaps(screen Vec2) bool
}
