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

// Йоу, чат! Тут команди компаса перетворюються на символи терміналу.
// Бульбашка з головою стає символом '@' середнього кольору іконки,
// стрілка стає одним з восьми символів-стрілок.

package client

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"

	"CompassCore/locator"
)

// arrowGlyphs - стрілки по годинниковій стрілці, починаючи з +X.
// Вісь Y екрану дивиться вниз.
var arrowGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// iconColors - середній колір кожної іконки, рахується один раз
type iconColors map[*locator.Icon]tcell.Color

func (ic iconColors) color(icon *locator.Icon) tcell.Color {
	if c, ok := ic[icon]; ok {
		return c
	}
	c := averageColor(icon.Image)
	ic[icon] = c
	return c
}

// release викидає колір іконки, яку відпустив кеш
func (ic iconColors) release(_ locator.EntityID, icon *locator.Icon) {
	delete(ic, icon)
}

// screenSink малює команди в термінал
type screenSink struct {
	screen tcell.Screen
	cell   Cell
	rows   int // рядків для гри (без статусу)
	cols   int
	colors iconColors
}

func newScreenSink(screen tcell.Screen, cell Cell, statusRows int, colors iconColors) *screenSink {
	cols, rows := screen.Size()
	return &screenSink{
		screen: screen,
		cell:   cell,
		rows:   rows - statusRows,
		cols:   cols,
		colors: colors,
	}
}

// Submit малює одну команду
func (s *screenSink) Submit(d locator.Directive) {
	x := int(math.Floor(d.Position[0] / s.cell.W))
	y := int(math.Floor(d.Position[1] / s.cell.H))
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}

	style := tcell.StyleDefault
	if d.Opacity < 1 {
		style = style.Dim(true)
	}
	switch d.Kind {
	case locator.IndicatorIcon:
		fg := tcell.ColorWhite
		if d.Icon != nil {
			fg = s.colors.color(d.Icon)
		}
		s.screen.SetContent(x, y, '@', nil, style.Foreground(fg).Bold(true))
	case locator.IndicatorArrow:
		s.screen.SetContent(x, y, arrowGlyph(d.Rotation), nil, style.Foreground(tcell.ColorRed))
	}
}

// arrowGlyph вибирає символ для повороту спрайту rotation.
// Спрайт стрілки дивиться вгору, тому кут напрямку = rotation - π/2.
func arrowGlyph(rotation float64) rune {
	angle := rotation - math.Pi/2
	i := int(math.Round(angle/(math.Pi/4))) % len(arrowGlyphs)
	if i < 0 {
		i += len(arrowGlyphs)
	}
	return arrowGlyphs[i]
}

// averageColor - середній колір непрозорих пікселів
func averageColor(img *image.RGBA) tcell.Color {
	if img == nil {
		return tcell.ColorWhite
	}
	var r, g, b, n uint64
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := uint64(img.Pix[i+3])
		if a == 0 {
			continue
		}
		// Pix зберігає premultiplied значення
		r += uint64(img.Pix[i]) * 255 / a
		g += uint64(img.Pix[i+1]) * 255 / a
		b += uint64(img.Pix[i+2]) * 255 / a
		n++
	}
	if n == 0 {
		return tcell.ColorWhite
	}
	return tcell.NewRGBColor(int32(r/n), int32(g/n), int32(b/n))
}
