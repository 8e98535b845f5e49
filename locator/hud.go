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

// Зони інтерфейсу, під якими бульбашка компаса стає напівпрозорою.

package locator

import (
	"CompassCore/locator/internal/bvh"
)

type (
	zoneTree = bvh.Tree[float64, Rect, string]
	zoneNode = bvh.Node[float64, Rect, string]
)

// HUDZones - іменовані прямокутники інтерфейсу в екранних координатах
type HUDZones struct {
	tree  zoneTree
	nodes map[string]*zoneNode
}

// NewHUDZones створює порожній набір зон
func NewHUDZones() *HUDZones {
	return &HUDZones{nodes: make(map[string]*zoneNode)}
}

// Set додає зону або переміщує існуючу
func (z *HUDZones) Set(name string, r Rect) {
	if n, ok := z.nodes[name]; ok {
		z.tree.Delete(n)
	}
	z.nodes[name] = z.tree.Insert(r, name)
}

// Remove прибирає зону
func (z *HUDZones) Remove(name string) {
	if n, ok := z.nodes[name]; ok {
		z.tree.Delete(n)
		delete(z.nodes, name)
	}
}

// Overlaps повідомляє чи точка лежить хоча б в одній зоні
func (z *HUDZones) Overlaps(p Vec2) bool {
	hit := false
	z.tree.Find(bvh.TouchPoint[Vec2, Rect](p), func(*zoneNode) bool {
		hit = true
		return false
	})
	return hit
}

// Under повертає імена зон під точкою
func (z *HUDZones) Under(p Vec2) []string {
	var names []string
	z.tree.Find(bvh.TouchPoint[Vec2, Rect](p), func(n *zoneNode) bool {
		names = append(names, n.Value)
		return true
	})
	return names
}

// Len повертає кількість зон
func (z *HUDZones) Len() int { return z.tree.Len() }
