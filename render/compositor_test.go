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
	"image"
	"image/color"
	"testing"

	"go.uber.org/zap/zaptest"

	"CompassCore/locator"
)

func visual() locator.VisualState {
	return locator.VisualState{
		TextureID: "farmer_base",
		EyeColor:  color.RGBA{R: 10, G: 160, B: 40, A: 255},
		Skin:      3,
		Hair:      0,
		HairColor: color.RGBA{R: 193, G: 90, B: 50, A: 255},
		Hat:       locator.NoHat,
		Accessory: locator.NoAccessory,
	}
}

func TestCompositor_Composite(t *testing.T) {
	sprites := DefaultSprites()
	c := NewCompositor(zaptest.NewLogger(t), sprites)
	v := visual()

	img, err := c.Composite(v)
	if err != nil {
		t.Fatal(err)
	}
	if size := img.Bounds().Size(); size != image.Pt(64, 64) {
		t.Fatalf("icon size = %v, want 64x64", size)
	}

	tests := []struct {
		name string
		at   image.Point
		want color.RGBA
	}{
		{"corner", image.Pt(0, 0), color.RGBA{}},
		{"skin", image.Pt(33, 24), sprites.SkinTones[3]},
		{"eye", image.Pt(24, 30), v.EyeColor},
		{"hair", image.Pt(33, 15), v.HairColor},
		{"above head", image.Pt(33, 12), color.RGBA{R: 250, G: 235, B: 200, A: 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.at.X, tt.at.Y); got != tt.want {
			t.Errorf("%s at %v = %v, want %v", tt.name, tt.at, got, tt.want)
		}
	}

	v.Hat = 0
	hat, err := c.Composite(v)
	if err != nil {
		t.Fatal(err)
	}
	want := color.RGBA{R: 160, G: 110, B: 50, A: 255}
	if got := hat.RGBAAt(33, 12); got != want {
		t.Errorf("hat pixel = %v, want %v", got, want)
	}
}

func TestCompositor_deterministic(t *testing.T) {
	c := NewCompositor(zaptest.NewLogger(t), DefaultSprites())
	a, _ := c.Composite(visual())
	b, _ := c.Composite(visual())
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("icons differ at byte %d", i)
		}
	}
}

func TestCompositor_errors(t *testing.T) {
	c := NewCompositor(zaptest.NewLogger(t), DefaultSprites())

	v := visual()
	v.TextureID = "wizard"
	if _, err := c.Composite(v); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("unknown texture: err = %v", err)
	}

	for name, change := range map[string]func(*locator.VisualState){
		"hair":      func(v *locator.VisualState) { v.Hair = 6 },
		"hat":       func(v *locator.VisualState) { v.Hat = 99 },
		"accessory": func(v *locator.VisualState) { v.Accessory = 2 },
	} {
		v := visual()
		change(&v)
		if _, err := c.Composite(v); !errors.Is(err, ErrFrameOutOfRange) {
			t.Errorf("%s out of range: err = %v", name, err)
		}
	}
}

func TestAtlas_Frame(t *testing.T) {
	a := DefaultSprites().Hair
	if a.Len() != 6 {
		t.Fatalf("Len = %d, want 6", a.Len())
	}
	f, err := a.Frame(4)
	if err != nil {
		t.Fatal(err)
	}
	if b := f.Bounds(); b != image.Rect(64, 0, 80, 16) {
		t.Errorf("frame bounds = %v", b)
	}
	if _, err := a.Frame(-1); !errors.Is(err, ErrFrameOutOfRange) {
		t.Errorf("Frame(-1): err = %v", err)
	}
	if (Atlas{}).Len() != 0 {
		t.Error("empty atlas has frames")
	}
}

func BenchmarkCompositor_Composite(b *testing.B) {
	c := NewCompositor(zaptest.NewLogger(b), DefaultSprites())
	v := visual()
	v.Hat = 1
	v.Accessory = 0
	for i := 0; i < b.N; i++ {
		if _, err := c.Composite(v); err != nil {
			b.Fatal(err)
		}
	}
}
