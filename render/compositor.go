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

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"CompassCore/locator"
)

// ErrUnknownTexture - немає обличчя для TextureID
var ErrUnknownTexture = errors.New("unknown texture")

const (
	iconScale = 4    // іконка в 4 рази більша за спрайт бульбашки
	headScale = 0.75 // голова займає 3/4 бульбашки
)

var _ locator.Compositor = (*Compositor)(nil)

// Compositor складає іконки гравців з шарів спрайтів.
// Порядок шарів: бульбашка, обличчя, аксесуар, волосся, капелюх, обвідка.
type Compositor struct {
	log     *zap.Logger
	sprites Sprites
	scaler  draw.Scaler
}

// NewCompositor створює компонувальник над набором спрайтів
func NewCompositor(logger *zap.Logger, sprites Sprites) *Compositor {
	return &Compositor{
		log:     logger,
		sprites: sprites,
		scaler:  draw.NearestNeighbor,
	}
}

// Arrow повертає спрайт стрілки
func (c *Compositor) Arrow() image.Image { return c.sprites.Arrow }

// Composite складає іконку для зовнішності v
func (c *Compositor) Composite(v locator.VisualState) (*image.RGBA, error) {
	faceSprite, ok := c.sprites.Faces[v.TextureID]
	if !ok {
		return nil, fmt.Errorf("texture %q: %w", v.TextureID, ErrUnknownTexture)
	}
	bg := c.sprites.Background.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bg.Dx()*iconScale, bg.Dy()*iconScale))
	c.scaler.Scale(dst, dst.Bounds(), c.sprites.Background, bg, draw.Over, nil)

	head := headRect(dst.Bounds())
	layer := func(src image.Image) {
		c.scaler.Scale(dst, head, src, src.Bounds(), draw.Over, nil)
	}

	layer(c.face(faceSprite, v))
	if v.Accessory != locator.NoAccessory {
		acc, err := c.sprites.Accessories.Frame(v.Accessory)
		if err != nil {
			return nil, fmt.Errorf("accessory: %w", err)
		}
		layer(acc)
	}
	hair, err := c.sprites.Hair.Frame(v.Hair)
	if err != nil {
		return nil, fmt.Errorf("hair: %w", err)
	}
	layer(tint(hair, func(px color.RGBA) color.RGBA { return multiply(px, v.HairColor) }))
	if v.Hat != locator.NoHat {
		hat, err := c.sprites.Hats.Frame(v.Hat)
		if err != nil {
			return nil, fmt.Errorf("hat: %w", err)
		}
		layer(hat)
	}

	if fg := c.sprites.Foreground; fg != nil {
		c.scaler.Scale(dst, dst.Bounds(), fg, fg.Bounds(), draw.Over, nil)
	}
	c.log.Debug("Icon composed",
		zap.String("texture", v.TextureID),
		zap.Int("hair", v.Hair),
		zap.Int("hat", v.Hat),
	)
	return dst, nil
}

// face фарбує шкіру і очі
func (c *Compositor) face(src image.Image, v locator.VisualState) image.Image {
	skin := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if tones := c.sprites.SkinTones; len(tones) > 0 {
		i := v.Skin % len(tones)
		if i < 0 {
			i += len(tones)
		}
		skin = tones[i]
	}
	eye := v.EyeColor
	eye.A = 255
	return tint(src, func(px color.RGBA) color.RGBA {
		switch {
		case px == EyeMarker:
			return eye
		case px.R == px.G && px.G == px.B:
			return multiply(px, skin)
		}
		return px
	})
}

// headRect - квадрат голови в центрі іконки
func headRect(r image.Rectangle) image.Rectangle {
	w := int(float64(r.Dx()) * headScale)
	h := int(float64(r.Dy()) * headScale)
	origin := r.Min.Add(image.Pt((r.Dx()-w)/2, (r.Dy()-h)/2))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}
}

// tint застосовує fn до кожного пікселя src
func tint(src image.Image, fn func(color.RGBA) color.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rectangle{Max: b.Size()})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := color.RGBAModel.Convert(src.At(x, y)).(color.RGBA)
			if px.A == 0 {
				continue
			}
			dst.SetRGBA(x-b.Min.X, y-b.Min.Y, fn(px))
		}
	}
	return dst
}

// multiply множить premultiplied колір на m, альфа лишається
func multiply(px, m color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(px.R) * uint16(m.R) / 255),
		G: uint8(uint16(px.G) * uint16(m.G) / 255),
		B: uint8(uint16(px.B) * uint16(m.B) / 255),
		A: px.A,
	}
}
