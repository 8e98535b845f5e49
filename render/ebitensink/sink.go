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

// Йоу, чат! Тут команди компаса малюються справжніми спрайтами через ebiten.
// Іконки завантажуються в GPU один раз і звільняються разом з кешем іконок.

package ebitensink

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"CompassCore/locator"
)

// Sink малює команди компаса на екран ebiten
type Sink struct {
	screen  *ebiten.Image
	uiScale float64 // пікселів екрану на одиницю інтерфейсу
	arrow   *ebiten.Image
	icons   map[*locator.Icon]*ebiten.Image
}

// New створює Sink. arrow - спрайт стрілки, що дивиться вгору.
func New(arrow image.Image) *Sink {
	return &Sink{
		uiScale: 1,
		arrow:   ebiten.NewImageFromImage(arrow),
		icons:   make(map[*locator.Icon]*ebiten.Image),
	}
}

// Begin готує Sink до нового кадру
func (s *Sink) Begin(screen *ebiten.Image, uiScale float64) {
	s.screen = screen
	s.uiScale = uiScale
}

// Submit малює одну команду
func (s *Sink) Submit(d locator.Directive) {
	if s.screen == nil {
		return
	}
	var img *ebiten.Image
	switch d.Kind {
	case locator.IndicatorIcon:
		if d.Icon == nil {
			return
		}
		img = s.icon(d.Icon)
	case locator.IndicatorArrow:
		img = s.arrow
	}
	if img == nil {
		return
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(d.Scale, d.Scale)
	op.GeoM.Rotate(d.Rotation)
	op.GeoM.Translate(d.Position[0]*s.uiScale, d.Position[1]*s.uiScale)
	op.ColorScale.ScaleAlpha(float32(d.Opacity))
	s.screen.DrawImage(img, op)
}

func (s *Sink) icon(icon *locator.Icon) *ebiten.Image {
	if img, ok := s.icons[icon]; ok {
		return img
	}
	if icon.Image == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(icon.Image)
	s.icons[icon] = img
	return img
}

// Release звільняє текстуру іконки. Підходить для IconCache.OnRelease.
func (s *Sink) Release(_ locator.EntityID, icon *locator.Icon) {
	if img, ok := s.icons[icon]; ok {
		img.Deallocate()
		delete(s.icons, icon)
	}
}

// Len повертає кількість завантажених текстур іконок
func (s *Sink) Len() int { return len(s.icons) }
