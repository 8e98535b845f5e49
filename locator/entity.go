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

// Йоу, чат! Тут описано що компас знає про інших гравців.
// Хост (гра) кожен кадр віддає нам знімок: де гравець, в якій локації,
// як він виглядає. Ми нічого не читаємо з чужих приватних полів -
// все що потрібно для іконки приходить явно у VisualState.

package locator

import (
	"image/color"

	"CompassCore/locator/internal/geom"
)

// Типи для роботи з геометрією
type (
	Vec2 = geom.Vec2[float64] // точка або зсув у світових чи екранних координатах
	Rect = geom.Rect[float64] // прямокутник вирівняний по осях
)

// EntityID - стабільний ідентифікатор гравця на час процесу
type EntityID int64

// NoHat / NoAccessory - значення для відсутнього головного убору чи аксесуара
const (
	NoHat       = -1
	NoAccessory = -1
)

// VisualState - все що видно на іконці гравця.
// TextureID порожній поки рендерер гравця не ініціалізований.
type VisualState struct {
	TextureID string     // ідентичність базової текстури (ніс, стать, шкіра)
	EyeColor  color.RGBA // колір очей
	Skin      int        // індекс кольору шкіри
	Hair      int        // індекс зачіски
	HairColor color.RGBA // колір волосся
	Hat       int        // індекс капелюха або NoHat
	Accessory int        // борода, окуляри або NoAccessory
}

// Entity - знімок віддаленого гравця на поточний кадр
type Entity struct {
	ID          EntityID
	Position    Vec2   // позиція ніг у світі
	Bounds      Rect   // приблизні межі тіла у світі
	Location    string // локація (ферма, місто, шахта)
	SplitScreen bool   // локальний гравець на розділеному екрані
	Visual      VisualState
}

// Viewer - локальний гравець, навколо якого будується компас
type Viewer struct {
	ID       EntityID
	Anchor   Vec2    // центр гравця у світі
	Location string  // локація
	Viewport Rect    // видима частина світу
	UIScale  float64 // масштаб інтерфейсу
	Zoom     float64 // масштаб камери
}

// scale повертає множник відступу uiScale / zoom
func (v Viewer) scale() float64 {
	if v.Zoom <= 0 || v.UIScale <= 0 {
		return 1
	}
	return v.UIScale / v.Zoom
}

// toScreen переводить світову точку в екранні координати інтерфейсу
func (v Viewer) toScreen(p Vec2) Vec2 {
	return p.Sub(v.Viewport.Min()).Mul(1 / v.scale())
}

// ApproximateBounds - приблизні межі гравця за позицією ніг.
// Тіло займає 3/4 клітинки по ширині і дві клітинки по висоті.
func ApproximateBounds(position Vec2, tileSize float64) Rect {
	return Rect{
		X: position[0] + 0.125*tileSize,
		Y: position[1] - 1.5*tileSize,
		W: 0.75 * tileSize,
		H: 2 * tileSize,
	}
}

// ViewerAnchor - центр локального гравця за позицією ніг
func ViewerAnchor(position Vec2, tileSize float64) Vec2 {
	return position.Add(Vec2{0.5 * tileSize, -0.5 * tileSize})
}

// NewEntity заповнює межі за позицією
func NewEntity(id EntityID, position Vec2, tileSize float64, location string, visual VisualState) Entity {
	return Entity{
		ID:       id,
		Position: position,
		Bounds:   ApproximateBounds(position, tileSize),
		Location: location,
		Visual:   visual,
	}
}
