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

// Йоу, чат! Тут живуть спрайти для іконок компаса.
// Справжня гра завантажує їх з PNG, а DefaultSprites малює
// простенький піксель-арт кодом, щоб демо і тести працювали без файлів.

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrFrameOutOfRange - індекс кадру за межами атласу
var ErrFrameOutOfRange = errors.New("sprite frame out of range")

// Atlas - сітка кадрів однакового розміру в одному зображенні
type Atlas struct {
	Image image.Image
	Cell  image.Point // розмір одного кадру
}

// Len повертає кількість кадрів
func (a Atlas) Len() int {
	if a.Image == nil || a.Cell.X <= 0 || a.Cell.Y <= 0 {
		return 0
	}
	size := a.Image.Bounds().Size()
	return (size.X / a.Cell.X) * (size.Y / a.Cell.Y)
}

// Frame вирізає кадр i. Кадри йдуть рядками зліва направо.
func (a Atlas) Frame(i int) (image.Image, error) {
	if i < 0 || i >= a.Len() {
		return nil, fmt.Errorf("frame %d of %d: %w", i, a.Len(), ErrFrameOutOfRange)
	}
	b := a.Image.Bounds()
	cols := b.Dx() / a.Cell.X
	origin := b.Min.Add(image.Pt(i%cols*a.Cell.X, i/cols*a.Cell.Y))
	r := image.Rectangle{Min: origin, Max: origin.Add(a.Cell)}

	if sub, ok := a.Image.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(r), nil
	}
	dst := image.NewRGBA(image.Rectangle{Max: a.Cell})
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Set(x-r.Min.X, y-r.Min.Y, a.Image.At(x, y))
		}
	}
	return dst, nil
}

// Sprites - всі шари, з яких складається іконка.
// Обличчя і волосся намальовані в сірих тонах і фарбуються при складанні.
type Sprites struct {
	Background  image.Image            // бульбашка
	Foreground  image.Image            // обвідка поверх усього
	Faces       map[string]image.Image // базова голова для кожної текстури
	Hair        Atlas
	Hats        Atlas
	Accessories Atlas
	Arrow       image.Image // стрілка, носом вгору
	SkinTones   []color.RGBA
}

// EyeMarker - колір пікселів обличчя, що замінюються кольором очей
var EyeMarker = color.RGBA{R: 0, G: 0, B: 255, A: 255}

const cell = 16

// DefaultSprites малює набір спрайтів 16x16
func DefaultSprites() Sprites {
	return Sprites{
		Background: bubble(color.RGBA{R: 250, G: 235, B: 200, A: 255}),
		Foreground: ring(color.RGBA{R: 90, G: 60, B: 40, A: 255}),
		Faces: map[string]image.Image{
			"farmer_base":      face(false),
			"farmer_girl_base": face(true),
		},
		Hair:        hairAtlas(),
		Hats:        hatAtlas(),
		Accessories: accessoryAtlas(),
		Arrow:       arrow(color.RGBA{R: 220, G: 60, B: 40, A: 255}),
		SkinTones: []color.RGBA{
			{R: 255, G: 224, B: 196, A: 255},
			{R: 241, G: 194, B: 155, A: 255},
			{R: 224, G: 172, B: 105, A: 255},
			{R: 198, G: 134, B: 66, A: 255},
			{R: 141, G: 85, B: 36, A: 255},
			{R: 92, G: 56, B: 36, A: 255},
		},
	}
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// disc заповнює коло з центром у (cx+.5, cy+.5)
func disc(img *image.RGBA, off image.Point, cx, cy, r float64, c color.RGBA) {
	for y := 0; y < cell; y++ {
		for x := 0; x < cell; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(off.X+x, off.Y+y, c)
			}
		}
	}
}

func bubble(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, cell, cell))
	disc(img, image.Point{}, 8, 8, 7.5, c)
	return img
}

func ring(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, cell, cell))
	disc(img, image.Point{}, 8, 8, 7.5, c)
	disc(img, image.Point{}, 8, 8, 6.5, color.RGBA{})
	return img
}

func face(long bool) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, cell, cell))
	skin := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	shade := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	fill(img, image.Rect(4, 3, 12, 13), skin)
	fill(img, image.Rect(3, 6, 4, 10), shade) // вуха
	fill(img, image.Rect(12, 6, 13, 10), shade)
	fill(img, image.Rect(7, 9, 9, 10), shade) // ніс
	fill(img, image.Rect(5, 7, 7, 8), EyeMarker)
	fill(img, image.Rect(9, 7, 11, 8), EyeMarker)
	if long {
		fill(img, image.Rect(6, 11, 10, 12), color.RGBA{R: 200, G: 80, B: 90, A: 255})
	}
	return img
}

// hairAtlas - 6 зачісок, рядок з шести кадрів
func hairAtlas() Atlas {
	const n = 6
	img := image.NewRGBA(image.Rect(0, 0, n*cell, cell))
	hair := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i := 0; i < n; i++ {
		off := image.Pt(i*cell, 0)
		fill(img, image.Rect(4, 2, 12, 4).Add(off), hair)
		switch i % 3 {
		case 1:
			fill(img, image.Rect(3, 3, 5, 9).Add(off), hair)
			fill(img, image.Rect(11, 3, 13, 9).Add(off), hair)
		case 2:
			fill(img, image.Rect(3, 3, 5, 13).Add(off), hair)
			fill(img, image.Rect(11, 3, 13, 13).Add(off), hair)
		}
		if i >= 3 {
			fill(img, image.Rect(5, 1, 11, 2).Add(off), hair)
		}
	}
	return Atlas{Image: img, Cell: image.Pt(cell, cell)}
}

func hatAtlas() Atlas {
	colors := []color.RGBA{
		{R: 160, G: 110, B: 50, A: 255},
		{R: 60, G: 90, B: 160, A: 255},
		{R: 200, G: 40, B: 40, A: 255},
		{R: 40, G: 40, B: 40, A: 255},
	}
	img := image.NewRGBA(image.Rect(0, 0, len(colors)*cell, cell))
	for i, c := range colors {
		off := image.Pt(i*cell, 0)
		fill(img, image.Rect(2, 3, 14, 4).Add(off), c)
		fill(img, image.Rect(4, 0, 12, 3).Add(off), c)
	}
	return Atlas{Image: img, Cell: image.Pt(cell, cell)}
}

func accessoryAtlas() Atlas {
	img := image.NewRGBA(image.Rect(0, 0, 2*cell, cell))
	// борода
	fill(img, image.Rect(4, 10, 12, 13), color.RGBA{R: 110, G: 70, B: 40, A: 255})
	// окуляри
	glass := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	fill(img, image.Rect(4, 6, 8, 9).Add(image.Pt(cell, 0)), glass)
	fill(img, image.Rect(8, 7, 9, 8).Add(image.Pt(cell, 0)), glass)
	fill(img, image.Rect(9, 6, 12, 9).Add(image.Pt(cell, 0)), glass)
	return Atlas{Image: img, Cell: image.Pt(cell, cell)}
}

func arrow(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		half := y / 2
		fill(img, image.Rect(4-half-1, y, 4+half+1, y+1), c)
	}
	return img
}
