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

// Йоу, чат! Зараз розберемо як клавіатура керує гравцем!
// Стрілки задають напрямок руху, пробіл зупиняє,
// інші клавіші перемикають локацію, зум і масштаб інтерфейсу.

package client

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"CompassCore/locator"
	"CompassCore/world"
)

// moveHandler задає напрямок руху
func moveHandler(dx, dy float64) KeyHandler {
	return func(_ *tcell.EventKey, c *Client) error {
		c.Inputs.Lock()
		c.Inputs.Move = locator.Vec2{dx, dy}
		c.Inputs.Unlock()
		return nil
	}
}

// stop зупиняє гравця
func stop(_ *tcell.EventKey, c *Client) error {
	c.Inputs.Lock()
	c.Inputs.Move = locator.Vec2{}
	c.Inputs.Unlock()
	return nil
}

// locations - локації по колу для клавіші t
var locations = []string{"Farm", "Town", "Beach", "Mountain"}

// travel переходить в наступну локацію
func travel(_ *tcell.EventKey, c *Client) error {
	next := locations[0]
	c.game.World().Update(c.game.Local(), func(p *world.Player) {
		for i, l := range locations {
			if l == p.Location {
				next = locations[(i+1)%len(locations)]
			}
		}
	})
	c.Inputs.Lock()
	c.Inputs.Travel = next
	c.Inputs.Unlock()
	return nil
}

// returnToTitle скидає компас
func returnToTitle(_ *tcell.EventKey, c *Client) error {
	c.game.ReturnToTitle(time.Now())
	return nil
}

// zoomHandler змінює зум камери
func zoomHandler(k float64) KeyHandler {
	return func(_ *tcell.EventKey, c *Client) error {
		c.zoom = min(max(c.zoom*k, 0.25), 4)
		c.resize()
		return nil
	}
}

// uiScaleHandler перемикає масштаб інтерфейсу 1 -> 1.5 -> 2 -> 1
func uiScaleHandler(_ *tcell.EventKey, c *Client) error {
	switch {
	case c.uiScale < 1.5:
		c.uiScale = 1.5
	case c.uiScale < 2:
		c.uiScale = 2
	default:
		c.uiScale = 1
	}
	c.resize()
	return nil
}

// quit виходить з клієнта
func quit(_ *tcell.EventKey, c *Client) error {
	c.Stop()
	return nil
}
