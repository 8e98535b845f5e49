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

// Йоу, чат! Тут камера локального гравця.
// Камера завжди дивиться на гравця, а розмір видимої частини світу
// залежить від розміру екрану, масштабу інтерфейсу і зуму.

package world

import "CompassCore/locator"

// Camera - параметри екрану локального гравця
type Camera struct {
	Width   float64 // ширина екрану в одиницях інтерфейсу
	Height  float64 // висота екрану в одиницях інтерфейсу
	UIScale float64 // пікселів екрану на одиницю інтерфейсу
	Zoom    float64 // пікселів екрану на піксель світу
}

// Viewport повертає видиму частину світу навколо точки center
func (c Camera) Viewport(center locator.Vec2) locator.Rect {
	k := 1.0
	if c.UIScale > 0 && c.Zoom > 0 {
		k = c.UIScale / c.Zoom
	}
	w, h := c.Width*k, c.Height*k
	return locator.Rect{X: center[0] - w/2, Y: center[1] - h/2, W: w, H: h}
}

// Viewer будує стан глядача для компаса з гравця id
func (w *World) Viewer(id locator.EntityID, cam Camera) (locator.Viewer, bool) {
	w.tickLock.Lock()
	defer w.tickLock.Unlock()
	p, ok := w.players[id]
	if !ok {
		return locator.Viewer{}, false
	}
	anchor := locator.ViewerAnchor(p.Position, w.config.TileSize)
	return locator.Viewer{
		ID:       p.ID,
		Anchor:   anchor,
		Location: p.Location,
		Viewport: cam.Viewport(anchor),
		UIScale:  cam.UIScale,
		Zoom:     cam.Zoom,
	}, true
}
