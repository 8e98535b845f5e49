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

// Йоу, чат! Тут рядок статусу внизу екрану:
// лічильники компаса, масштаб і останнє системне повідомлення.

package client

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// statusRows - скільки рядків знизу займає статус
const statusRows = 2

func (c *Client) drawStatus(now time.Time) {
	cols, rows := c.screen.Size()
	s := c.game.Stats()
	line := fmt.Sprintf(" tracked %d  cached %d  regen %d  deferred %d  degenerate %d  ui x%.1f  zoom x%.2f",
		s.Tracked, s.Cached, s.Regenerations, s.Deferred, s.Degenerate, c.uiScale, c.zoom)
	style := tcell.StyleDefault.Reverse(true)
	c.putLine(rows-2, cols, line, style)

	msg := " arrows move  space stop  t travel  +/- zoom  u ui scale  r title  q quit"
	if msgs := c.game.Messages(now); len(msgs) > 0 {
		msg = " " + msgs[len(msgs)-1].Text
	}
	c.putLine(rows-1, cols, msg, tcell.StyleDefault)
}

func (c *Client) putLine(y, cols int, text string, style tcell.Style) {
	x := 0
	for _, r := range text {
		if x >= cols {
			break
		}
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		c.screen.SetContent(x, y, ' ', nil, style)
	}
}
