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

package client

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"CompassCore/locator"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(50, 20)
	return screen
}

func solidIcon(c color.RGBA) *locator.Icon {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return &locator.Icon{Image: img, Width: 4, Height: 4}
}

func TestArrowGlyph(t *testing.T) {
	for _, tc := range []struct {
		rotation float64
		want     rune
	}{
		{math.Pi / 2, '→'},
		{math.Pi, '↓'},
		{0, '↑'},
		{3 * math.Pi / 2, '←'},
		{-math.Pi / 2, '←'},
		{3 * math.Pi / 4, '↘'},
	} {
		if got := arrowGlyph(tc.rotation); got != tc.want {
			t.Errorf("arrowGlyph(%v) = %q, want %q", tc.rotation, got, tc.want)
		}
	}
}

func TestScreenSinkSubmit(t *testing.T) {
	screen := newTestScreen(t)
	colors := make(iconColors)
	sink := newScreenSink(screen, Cell{W: 16, H: 32}, statusRows, colors)
	icon := solidIcon(color.RGBA{200, 100, 50, 255})

	sink.Submit(locator.Directive{Kind: locator.IndicatorIcon, Icon: icon, Position: locator.Vec2{750, 300}, Opacity: 1})
	sink.Submit(locator.Directive{Kind: locator.IndicatorArrow, Position: locator.Vec2{786, 300}, Rotation: math.Pi / 2, Opacity: 0.5})

	r, _, style, _ := screen.GetContent(46, 9)
	if r != '@' {
		t.Errorf("icon cell = %q, want '@'", r)
	}
	fg, _, attrs := style.Decompose()
	if fg != tcell.NewRGBColor(200, 100, 50) {
		t.Errorf("icon color = %v", fg)
	}
	if attrs&tcell.AttrDim != 0 {
		t.Error("opaque icon must not be dimmed")
	}

	r, _, style, _ = screen.GetContent(49, 9)
	if r != '→' {
		t.Errorf("arrow cell = %q, want '→'", r)
	}
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrDim == 0 {
		t.Error("translucent arrow must be dimmed")
	}
	if len(colors) != 1 {
		t.Errorf("cached colors = %d, want 1", len(colors))
	}
}

func TestScreenSinkDropsOffscreen(t *testing.T) {
	screen := newTestScreen(t)
	sink := newScreenSink(screen, Cell{W: 16, H: 32}, statusRows, make(iconColors))

	for _, p := range []locator.Vec2{{900, 300}, {-1, 300}, {100, -1}, {100, 19 * 32}} {
		sink.Submit(locator.Directive{Kind: locator.IndicatorArrow, Position: p, Opacity: 1})
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 50; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r != ' ' {
				t.Fatalf("cell (%d, %d) = %q, want blank", x, y, r)
			}
		}
	}
}

func TestIconColorsRelease(t *testing.T) {
	colors := make(iconColors)
	icon := solidIcon(color.RGBA{10, 20, 30, 255})
	if got := colors.color(icon); got != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("color = %v", got)
	}
	colors.release(1, icon)
	if len(colors) != 0 {
		t.Errorf("colors after release = %d, want 0", len(colors))
	}
}

func TestAverageColor(t *testing.T) {
	if got := averageColor(nil); got != tcell.ColorWhite {
		t.Errorf("nil image = %v, want white", got)
	}
	if got := averageColor(image.NewRGBA(image.Rect(0, 0, 2, 2))); got != tcell.ColorWhite {
		t.Errorf("transparent image = %v, want white", got)
	}

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{200, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 100, 0, 255})
	if got := averageColor(img); got != tcell.NewRGBColor(100, 50, 0) {
		t.Errorf("average = %v, want (100, 50, 0)", got)
	}
}
